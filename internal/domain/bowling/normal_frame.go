package bowling

// NormalFrame is one of the frames 1 to 9: at most two rolls, closed by a strike.
type NormalFrame struct {
	rolls
}

// NewNormalFrame creates an empty frame at the given 0-indexed position.
func NewNormalFrame(number int) *NormalFrame {
	return &NormalFrame{rolls: rolls{number: number, pins: make([]int, 0, 2), max: 2}}
}

// SetPinsDown records pins for roll (1 or 2). Nothing is recorded on error.
func (f *NormalFrame) SetPinsDown(roll, pins int) error {
	if err := f.checkRoll(roll, pins); err != nil {
		return err
	}

	if roll == 2 {
		if f.pins[0]+pins > Pins {
			return invalidRoll("The total score exceeds 10")
		}

		if f.IsStrike() {
			return invalidRoll("No second roll is allowed after a strike")
		}
	}

	f.pins = append(f.pins, pins)

	return nil
}

// IsClosed reports whether no further roll can be recorded.
func (f *NormalFrame) IsClosed() bool {
	return f.IsStrike() || len(f.pins) == 2
}

// Reset clears every roll and returns the frame.
func (f *NormalFrame) Reset() Frame {
	f.clear()

	return f
}

// String renders the frame on two characters.
func (f *NormalFrame) String() string {
	switch {
	case len(f.pins) == 0:
		return "  "
	case len(f.pins) == 1:
		return symbol(f.pins[0]) + " "
	case f.IsSpare():
		return symbol(f.pins[0]) + "/"
	default:
		return symbol(f.pins[0]) + symbol(f.pins[1])
	}
}
