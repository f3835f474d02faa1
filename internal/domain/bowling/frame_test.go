package bowling

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalFrame_String(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		want  string
	}{
		{"no rolls", nil, "  "},
		{"strike", []int{10}, "X "},
		{"gutter first roll", []int{0}, "- "},
		{"two gutters", []int{0, 0}, "--"},
		{"gutter then spare", []int{0, 10}, "-/"},
		{"spare", []int{5, 5}, "5/"},
		{"gutter then nine", []int{0, 9}, "-9"},
		{"open frame", []int{2, 3}, "23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Roll(NewNormalFrame(1), tt.rolls...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, frame.String())
			assert.Len(t, frame.String(), 2)
		})
	}
}

func TestLastFrame_String(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		want  string
	}{
		{"no rolls", nil, "   "},
		{"strike", []int{10}, "X  "},
		{"gutter", []int{0}, "-  "},
		{"gutter then spare", []int{0, 10}, "-/ "},
		{"two strikes", []int{10, 10}, "XX "},
		{"two gutters", []int{0, 0}, "-- "},
		{"strike then seven", []int{10, 7}, "X7 "},
		{"spare and bonus", []int{3, 7, 7}, "3/7"},
		{"spare without bonus", []int{3, 7}, "3/ "},
		{"strike then spare", []int{10, 3, 7}, "X3/"},
		{"three strikes", []int{10, 10, 10}, "XXX"},
		{"spare then strike", []int{1, 9, 10}, "1/X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Roll(NewLastFrame(9), tt.rolls...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, frame.String())
		})
	}
}

func TestNormalFrame_CountPinsDown_AllValidPairs(t *testing.T) {
	for a := 0; a <= Pins; a++ {
		if a == Pins {
			frame, err := Roll(NewNormalFrame(0), a)
			require.NoError(t, err)
			assert.Equal(t, Pins, frame.CountPinsDown())
			assert.True(t, frame.IsClosed())

			continue
		}

		for b := 0; a+b <= Pins; b++ {
			frame, err := Roll(NewNormalFrame(0), a, b)
			require.NoError(t, err, "rolls (%d,%d)", a, b)
			assert.Equal(t, a+b, frame.CountPinsDown(), "rolls (%d,%d)", a, b)
			assert.Equal(t, 2, frame.CountRolls())
			assert.Equal(t, a+b == Pins, frame.IsSpare())
		}
	}
}

func TestFrame_Reset(t *testing.T) {
	frames := []Frame{NewNormalFrame(0), NewLastFrame(9)}

	for _, frame := range frames {
		t.Run(fmt.Sprintf("%T", frame), func(t *testing.T) {
			_, err := Roll(frame, 5, 4)
			require.NoError(t, err)

			got := frame.Reset()
			assert.Same(t, frame, got)
			assert.Equal(t, 0, frame.CountRolls())
			assert.Equal(t, 0, frame.CountPinsDown())

			for roll := 0; roll <= 4; roll++ {
				assert.Equal(t, NoRoll, frame.PinsDown(roll))
			}

			// A reset frame accepts a new first roll.
			require.NoError(t, frame.SetPinsDown(1, 7))
			assert.Equal(t, 7, frame.PinsDown(1))
		})
	}
}

func TestNormalFrame_SetPinsDown_Errors(t *testing.T) {
	tests := []struct {
		name    string
		played  []int
		roll    int
		pins    int
		message string
	}{
		{"third roll", []int{2, 2}, 3, 2, "There is no such roll 3"},
		{"roll zero", nil, 0, 2, "There is no such roll 0"},
		{"second roll after strike exceeding", []int{10}, 2, 1, "The total score exceeds 10"},
		{"second roll after strike", []int{10}, 2, 0, "No second roll is allowed after a strike"},
		{"first roll replayed", []int{10}, 1, 5, "Roll 1 has already been played"},
		{"second roll first", nil, 2, 5, "Roll 2 cannot be played before roll 1"},
		{"too many pins", nil, 1, 11, "Invalid number of pins 11"},
		{"negative pins", nil, 1, -1, "Invalid number of pins -1"},
		{"total exceeds ten", []int{6}, 2, 5, "The total score exceeds 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Roll(NewNormalFrame(1), tt.played...)
			require.NoError(t, err)

			before := frame.Rolls()

			err = frame.SetPinsDown(tt.roll, tt.pins)
			require.Error(t, err)
			assert.EqualError(t, err, tt.message)
			assert.ErrorIs(t, err, ErrInvalidOperation)
			assert.ErrorIs(t, err, ErrInvalidRoll)
			assert.NotErrorIs(t, err, ErrInvalidFrame)
			assert.Equal(t, before, frame.Rolls(), "a rejected roll must not be recorded")
		})
	}
}

func TestNormalFrame_RejectedRollKeepsState(t *testing.T) {
	t.Run("second roll before first", func(t *testing.T) {
		frame := NewNormalFrame(1)

		require.Error(t, frame.SetPinsDown(2, 5))
		assert.Equal(t, NoRoll, frame.PinsDown(2))
		assert.Equal(t, 0, frame.CountRolls())
	})

	t.Run("total exceeding ten", func(t *testing.T) {
		frame := NewNormalFrame(1)
		require.NoError(t, frame.SetPinsDown(1, 9))

		require.Error(t, frame.SetPinsDown(2, 2))
		assert.Equal(t, 9, frame.CountPinsDown())
	})

	t.Run("too many pins on fresh frame", func(t *testing.T) {
		frame := NewNormalFrame(1)

		require.Error(t, frame.SetPinsDown(1, 11))
		assert.Equal(t, 0, frame.CountPinsDown())
	})
}

func TestLastFrame_SetPinsDown(t *testing.T) {
	tests := []struct {
		name    string
		rolls   []int
		message string
	}{
		{"open frame", []int{2, 2}, ""},
		{"third roll on open frame", []int{2, 2, 2}, "No third roll is allowed"},
		{"spare earns third roll", []int{5, 5, 5}, ""},
		{"spare then strike", []int{5, 5, 10}, ""},
		{"strike earns two rolls", []int{10, 2, 5}, ""},
		{"strike then spare", []int{10, 2, 8}, ""},
		{"strike then too many pins", []int{10, 2, 9}, "The total score exceeds 10"},
		{"three strikes", []int{10, 10, 10}, ""},
		{"two strikes then anything", []int{10, 10, 4}, ""},
		{"first two rolls exceed", []int{6, 5}, "The total score exceeds 10"},
		{"fourth roll", []int{10, 10, 10, 10}, "There is no such roll 4"},
		{"negative pins", []int{-1}, "Invalid number of pins -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := NewLastFrame(9)
			_, err := Roll(frame, tt.rolls...)

			if tt.message == "" {
				require.NoError(t, err)
				assert.Equal(t, len(tt.rolls), frame.CountRolls())

				return
			}

			require.Error(t, err)
			assert.EqualError(t, err, tt.message)
			assert.True(t, errors.Is(err, ErrInvalidRoll))
			assert.Equal(t, len(tt.rolls)-1, frame.CountRolls())
		})
	}
}

func TestLastFrame_IsClosed(t *testing.T) {
	tests := []struct {
		rolls  []int
		closed bool
	}{
		{nil, false},
		{[]int{10}, false},
		{[]int{10, 3}, false},
		{[]int{3, 7}, false},
		{[]int{3, 6}, true},
		{[]int{3, 7, 1}, true},
		{[]int{10, 10, 10}, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.rolls), func(t *testing.T) {
			frame, err := Roll(NewLastFrame(9), tt.rolls...)
			require.NoError(t, err)
			assert.Equal(t, tt.closed, frame.IsClosed())
		})
	}
}

func TestFrame_CountsOnPartialFrames(t *testing.T) {
	normal, err := Roll(NewNormalFrame(1), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, normal.CountRolls())
	assert.Equal(t, 5, normal.CountPinsDown())
	assert.Equal(t, 5, normal.PinsDown(1))
	assert.Equal(t, NoRoll, normal.PinsDown(2))

	last, err := Roll(NewLastFrame(9), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, last.CountRolls())
	assert.Equal(t, 5, last.CountPinsDown())

	gutter, err := Roll(NewNormalFrame(1), 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, gutter.CountRolls())
	assert.Equal(t, 5, gutter.CountPinsDown())
}

func TestFrame_RollsIsACopy(t *testing.T) {
	frame, err := Roll(NewNormalFrame(0), 3, 4)
	require.NoError(t, err)

	rolls := frame.Rolls()
	rolls[0] = 9

	assert.Equal(t, 3, frame.PinsDown(1))
}
