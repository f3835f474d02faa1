package bowling

import "strings"

// LastFrame is the tenth frame. A strike or a spare earns a third, bonus roll.
type LastFrame struct {
	rolls
}

// NewLastFrame creates an empty tenth frame at the given 0-indexed position.
func NewLastFrame(number int) *LastFrame {
	return &LastFrame{rolls: rolls{number: number, pins: make([]int, 0, 3), max: 3}}
}

// SetPinsDown records pins for roll (1, 2 or 3). Nothing is recorded on error.
func (f *LastFrame) SetPinsDown(roll, pins int) error {
	if err := f.checkRoll(roll, pins); err != nil {
		return err
	}

	switch roll {
	case 2:
		if !f.IsStrike() && f.pins[0]+pins > Pins {
			return invalidRoll("The total score exceeds 10")
		}
	case 3:
		if !f.IsStrike() && !f.IsSpare() {
			return invalidRoll("No third roll is allowed")
		}

		// After a strike the second and third rolls share a fresh rack
		// unless the second roll was itself a strike.
		if f.IsStrike() && f.pins[1] != Pins && f.pins[1]+pins > Pins {
			return invalidRoll("The total score exceeds 10")
		}
	}

	f.pins = append(f.pins, pins)

	return nil
}

// IsClosed reports whether no further roll can be recorded.
func (f *LastFrame) IsClosed() bool {
	switch len(f.pins) {
	case 3:
		return true
	case 2:
		return !f.IsStrike() && !f.IsSpare()
	default:
		return false
	}
}

// Reset clears every roll and returns the frame.
func (f *LastFrame) Reset() Frame {
	f.clear()

	return f
}

// String renders the frame on three characters.
func (f *LastFrame) String() string {
	var sb strings.Builder

	for i := 0; i < 3; i++ {
		if i >= len(f.pins) {
			sb.WriteByte(' ')
			continue
		}

		sb.WriteString(f.slot(i))
	}

	return sb.String()
}

// slot renders roll i, showing a spare when it completes a rack opened by roll i-1.
func (f *LastFrame) slot(i int) string {
	if i > 0 && f.opensRack(i-1) && f.pins[i-1]+f.pins[i] == Pins {
		return "/"
	}

	return symbol(f.pins[i])
}

// opensRack reports whether roll i was thrown at a full rack and left pins standing.
func (f *LastFrame) opensRack(i int) bool {
	if f.pins[i] == Pins {
		return false
	}

	switch i {
	case 0:
		return true
	case 1:
		return f.pins[0] == Pins
	default:
		return false
	}
}
