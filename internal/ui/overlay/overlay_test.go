package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(width, height int) string {
	row := strings.Repeat(".", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestPlace_Center(t *testing.T) {
	result := Place(Config{Width: 5, Height: 5, Position: Center}, "XXX\nXXX\nXXX", grid(5, 5))

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, ".....", lines[0])
	assert.Equal(t, ".XXX.", lines[1])
	assert.Equal(t, ".XXX.", lines[3])
	assert.Equal(t, ".....", lines[4])
}

func TestPlace_BottomWithPadding(t *testing.T) {
	result := Place(Config{Width: 5, Height: 5, Position: Bottom, PadY: 1}, "XX", grid(5, 5))

	lines := strings.Split(result, "\n")
	assert.Equal(t, ".....", lines[4])
	assert.Contains(t, lines[3], "XX")
	assert.Equal(t, ".....", lines[0])
}

func TestPlace_PreservesBackgroundOnSides(t *testing.T) {
	result := Place(Config{Width: 5, Height: 3, Position: Center}, "X", "ABCDE\nFGHIJ\nKLMNO")

	lines := strings.Split(result, "\n")
	assert.Equal(t, "FGXIJ", lines[1])
}

func TestPlace_PreservesANSI(t *testing.T) {
	bg := "\x1b[31mRED\x1b[0m\n\x1b[31mRED\x1b[0m\n\x1b[31mRED\x1b[0m"

	result := Place(Config{Width: 3, Height: 3, Position: Center}, "X", bg)

	assert.Contains(t, result, "\x1b[31m")
	assert.Contains(t, result, "X")
}

func TestPlace_PadsShortBackground(t *testing.T) {
	result := Place(Config{Width: 5, Height: 3, Position: Center}, "XX\nXX", "")

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, result, "XX")
}

func TestOrigin(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		w, h  int
		wantX int
		wantY int
	}{
		{"center", Config{Width: 10, Height: 10, Position: Center}, 4, 2, 3, 4},
		{"bottom", Config{Width: 10, Height: 10, Position: Bottom, PadY: 1}, 4, 2, 3, 7},
		{"clamped", Config{Width: 5, Height: 5, Position: Center}, 10, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := origin(tt.cfg, tt.w, tt.h)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}
