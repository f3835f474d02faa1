package bowling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMark(t *testing.T) {
	tests := []struct {
		mark     string
		standing int
		want     int
		wantErr  string
	}{
		{"X", 10, 10, ""},
		{"x", 10, 10, ""},
		{"-", 10, 0, ""},
		{" 7 ", 10, 7, ""},
		{"/", 4, 4, ""},
		{"/", 10, 0, "A spare needs a previous roll in the frame"},
		{"seven", 10, 0, `Invalid mark "seven"`},
	}

	for _, tt := range tests {
		t.Run(tt.mark, func(t *testing.T) {
			got, err := ParseMark(tt.mark, tt.standing)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidRoll)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGame_Next(t *testing.T) {
	g := NewGame()

	frame, roll, standing, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 10}, []int{frame, roll, standing})

	require.NoError(t, g.Roll(3))

	frame, roll, standing, err = g.Next()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 7}, []int{frame, roll, standing})

	require.NoError(t, g.Roll(7))

	frame, roll, standing, err = g.Next()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 10}, []int{frame, roll, standing})
}

func TestGame_Next_TenthFrameRacks(t *testing.T) {
	tests := []struct {
		name     string
		tenth    []int
		standing int
	}{
		{"after a strike", []int{10}, 10},
		{"strike then three", []int{10, 3}, 7},
		{"two strikes", []int{10, 10}, 10},
		{"after a spare", []int{3, 7}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewStandardGame()
			for i := 0; i < 18; i++ {
				require.NoError(t, g.Roll(0))
			}

			for _, pins := range tt.tenth {
				require.NoError(t, g.Roll(pins))
			}

			frame, roll, standing, err := g.Next()
			require.NoError(t, err)
			assert.Equal(t, LastFrameNumber, frame)
			assert.Equal(t, len(tt.tenth)+1, roll)
			assert.Equal(t, tt.standing, standing)
		})
	}
}

func TestGame_RollMark(t *testing.T) {
	g := NewGame()
	for _, mark := range []string{"3", "6", "X", "5", "-", "1", "/", "X", "-", "-", "-", "6", "X", "2", "/", "1", "/", "3"} {
		require.NoError(t, g.RollMark(mark), mark)
	}

	assert.Equal(t, 109, g.CumulativeScore(10))

	err := g.RollMark("X")
	require.Error(t, err)
	assert.EqualError(t, err, "The game is over")
}

func TestGame_RollMark_Rejected(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.RollMark("4"))

	err := g.RollMark("X")
	require.Error(t, err)
	assert.EqualError(t, err, "The total score exceeds 10")

	err = g.RollMark("?")
	require.Error(t, err)

	require.NoError(t, g.RollMark("/"))
	assert.Equal(t, 10, g.CumulativeScore(0))
}
