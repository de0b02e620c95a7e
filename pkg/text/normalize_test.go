package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace", " \n\t ", ""},
		{"trim", "  Hello there!  ", "Hello there!"},
		{"spaces", "Hello    there,   friend.", "Hello there, friend."},
		{"windows", "Hello\r\nthere", "Hello\nthere"},
		{"paragraphs", "Hello.\n\n\n\nHow are you?", "Hello.\n\nHow are you?"},
		{"indented lines", "Hello.\n    How are you?", "Hello.\nHow are you?"},
		{"bell", "Hello\a there", "Hello there"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}
