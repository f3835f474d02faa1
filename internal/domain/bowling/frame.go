// Package bowling implements ten-pin bowling frames and game scoring.
package bowling

import (
	"strconv"
	"strings"
)

const (
	// Pins is the number of pins standing at the start of a frame.
	Pins = 10
	// Frames is the number of frames in a game.
	Frames = 10
	// LastFrameNumber is the 0-indexed number of the tenth frame.
	LastFrameNumber = Frames - 1
	// NoRoll is returned by PinsDown for a roll that was not played.
	NoRoll = -1
)

// Frame holds the rolls of one turn. Frames are numbered from 0.
type Frame interface {
	Number() int
	SetPinsDown(roll, pins int) error
	PinsDown(roll int) int
	CountRolls() int
	CountPinsDown() int
	Rolls() []int
	IsStrike() bool
	IsSpare() bool
	IsClosed() bool
	Reset() Frame
	String() string
}

// Roll records pins as rolls 1..n of frame and returns the frame.
// It stops at the first rejected roll; rolls recorded before it are kept.
func Roll(frame Frame, pins ...int) (Frame, error) {
	for _, p := range pins {
		if err := frame.SetPinsDown(frame.CountRolls()+1, p); err != nil {
			return frame, err
		}
	}

	return frame, nil
}

// rolls is the storage shared by both frame variants.
type rolls struct {
	number int
	pins   []int
	max    int
}

func (r *rolls) Number() int {
	return r.number
}

func (r *rolls) PinsDown(roll int) int {
	if roll < 1 || roll > len(r.pins) {
		return NoRoll
	}

	return r.pins[roll-1]
}

func (r *rolls) CountRolls() int {
	return len(r.pins)
}

func (r *rolls) CountPinsDown() int {
	total := 0
	for _, p := range r.pins {
		total += p
	}

	return total
}

func (r *rolls) Rolls() []int {
	out := make([]int, len(r.pins))
	copy(out, r.pins)

	return out
}

func (r *rolls) IsStrike() bool {
	return len(r.pins) > 0 && r.pins[0] == Pins
}

func (r *rolls) IsSpare() bool {
	return len(r.pins) >= 2 && r.pins[0] != Pins && r.pins[0]+r.pins[1] == Pins
}

func (r *rolls) clear() {
	r.pins = r.pins[:0]
}

// checkRoll validates the roll index and pin count common to every variant.
func (r *rolls) checkRoll(roll, pins int) error {
	if roll < 1 || roll > r.max {
		return invalidRoll("There is no such roll %d", roll)
	}

	if roll <= len(r.pins) {
		return invalidRoll("Roll %d has already been played", roll)
	}

	if roll > len(r.pins)+1 {
		return invalidRoll("Roll %d cannot be played before roll %d", roll, roll-1)
	}

	if pins < 0 || pins > Pins {
		return invalidRoll("Invalid number of pins %d", pins)
	}

	return nil
}

func symbol(pins int) string {
	switch pins {
	case Pins:
		return "X"
	case 0:
		return "-"
	default:
		return strconv.Itoa(pins)
	}
}

// standingPins returns the pins standing for the next roll of frame.
func standingPins(frame Frame) int {
	r := frame.Rolls()
	if len(r) == 0 {
		return Pins
	}

	prev := r[len(r)-1]

	// A new rack is set after a strike, and after a spare in the tenth frame.
	if prev == Pins || (len(r) == 2 && frame.IsSpare()) {
		return Pins
	}

	return Pins - prev
}

// ParseMark converts a scorecard mark into a pin count. standing is the
// number of pins left for the roll, used to resolve a spare.
func ParseMark(mark string, standing int) (int, error) {
	switch strings.TrimSpace(mark) {
	case "X", "x":
		return Pins, nil
	case "-":
		return 0, nil
	case "/":
		if standing == Pins {
			return 0, invalidRoll("A spare needs a previous roll in the frame")
		}

		return standing, nil
	}

	pins, err := strconv.Atoi(strings.TrimSpace(mark))
	if err != nil {
		return 0, invalidRoll("Invalid mark %q", mark)
	}

	return pins, nil
}
