package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatLength(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{0, "0 values"},
		{1, "1 value"},
		{3, "3 values"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatLength(tt.count))
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "demo", 10, "demo"},
		{"truncated", "demo-collection", 8, "demo-..."},
		{"tiny width", "12345", 2, ".."},
		{"zero width", "12345", 0, ""},
		{"wide runes", "数据结构列表", 7, "数据..."},
		{"keeps combining marks", "cafe\u0301-collection", 7, "cafe\u0301..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, TruncateString(tt.input, tt.width))
		})
	}
}
