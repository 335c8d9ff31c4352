package handler

import (
	"testing"

	"sponsorbot/internal/domain"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "test_data",
			expected: "test_data",
		},
		{
			name:     "string with whitespace",
			input:    "  test_data  ",
			expected: "test_data",
		},
		{
			name:     "string with newline",
			input:    "test\ndata",
			expected: "testdata",
		},
		{
			name:     "string with tab",
			input:    "test\tdata",
			expected: "testdata",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "test\x00data\x01",
			expected: "testdata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCallbackLanguage(t *testing.T) {
	tests := []struct {
		name     string
		unique   string
		data     string
		expected domain.Language
		ok       bool
	}{
		{name: "unique ru", unique: "lang_ru", expected: domain.LanguageRU, ok: true},
		{name: "unique en", unique: "lang_en", expected: domain.LanguageEN, ok: true},
		{name: "data fallback", data: "\flang_en", expected: domain.LanguageEN, ok: true},
		{name: "other unique ignores data", unique: "other", data: "lang_en"},
		{name: "unknown data", data: "lang_de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := callbackLanguage(&tele.Callback{Unique: tt.unique, Data: tt.data})
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, lang)
		})
	}
}
