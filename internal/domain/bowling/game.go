package bowling

import (
	"slices"
)

// Game is an ordered set of at most ten frames, keyed by 0-indexed frame number.
// A Game is not safe for concurrent use.
type Game struct {
	frames map[int]Frame
}

// NewGame creates a game without frames.
func NewGame() *Game {
	return &Game{frames: make(map[int]Frame, Frames)}
}

// NewStandardGame creates a game holding ten empty frames.
func NewStandardGame() *Game {
	g := NewGame()
	for n := 0; n < Frames; n++ {
		g.frames[n] = newFrame(n)
	}

	return g
}

func newFrame(number int) Frame {
	if number == LastFrameNumber {
		return NewLastFrame(number)
	}

	return NewNormalFrame(number)
}

// AddFrame inserts frame at its own number. The tenth frame must be a
// LastFrame and the nine others NormalFrames.
func (g *Game) AddFrame(frame Frame) error {
	if frame == nil {
		return invalidFrame("Cannot add a nil frame")
	}

	n := frame.Number()
	if n < 0 || n > LastFrameNumber {
		return invalidFrame("There is no such frame number %d", n)
	}

	if _, exists := g.frames[n]; exists {
		return invalidFrame("Frame %d already exists", n)
	}

	_, last := frame.(*LastFrame)
	if last && n != LastFrameNumber {
		return invalidFrame("Frame %d cannot be a last frame", n)
	}

	if !last && n == LastFrameNumber {
		return invalidFrame("Frame %d must be a last frame", n)
	}

	g.frames[n] = frame

	return nil
}

// Frame returns the frame stored at number.
func (g *Game) Frame(number int) (Frame, error) {
	f, ok := g.frames[number]
	if !ok {
		return nil, invalidFrame("There is no frame %d", number)
	}

	return f, nil
}

// Len returns the number of frames in the game.
func (g *Game) Len() int {
	return len(g.frames)
}

// Frames returns the frames in play order.
func (g *Game) Frames() []Frame {
	out := make([]Frame, 0, len(g.frames))
	for _, n := range g.numbers() {
		out = append(out, g.frames[n])
	}

	return out
}

// Roll records pins as the next roll of the game, adding the next frame
// when the current one is closed.
func (g *Game) Roll(pins int) error {
	frame, fresh, err := g.current()
	if err != nil {
		return err
	}

	if err := frame.SetPinsDown(frame.CountRolls()+1, pins); err != nil {
		return err
	}

	if fresh {
		g.frames[frame.Number()] = frame
	}

	return nil
}

// RollMark records the next roll written as a scorecard mark: a digit,
// "X" for a strike, "/" for a spare or "-" for a miss.
func (g *Game) RollMark(mark string) error {
	_, _, standing, err := g.Next()
	if err != nil {
		return err
	}

	pins, err := ParseMark(mark, standing)
	if err != nil {
		return err
	}

	return g.Roll(pins)
}

// Next returns the frame number and roll index the next call to Roll will
// record, and the number of pins standing for that roll.
func (g *Game) Next() (frame, roll, standing int, err error) {
	f, _, err := g.current()
	if err != nil {
		return 0, 0, 0, err
	}

	return f.Number(), f.CountRolls() + 1, standingPins(f), nil
}

// IsComplete reports whether all ten frames are present and closed.
func (g *Game) IsComplete() bool {
	if len(g.frames) < Frames {
		return false
	}

	for _, f := range g.frames {
		if !f.IsClosed() {
			return false
		}
	}

	return true
}

// CumulativeScore returns the running total of every frame numbered up to
// and including through. Numbers past the last frame give the game total.
// Bonuses that depend on rolls not yet played are left out.
func (g *Game) CumulativeScore(through int) int {
	scores := g.FrameScores()
	total := 0

	for i, n := range g.numbers() {
		if n > through {
			break
		}

		total = scores[i]
	}

	return total
}

// FrameScores returns the cumulative score after each frame, in play order.
func (g *Game) FrameScores() []int {
	numbers := g.numbers()

	// Flatten all rolls once; starts[i] is the index of frame i's first roll.
	var flat []int

	starts := make([]int, len(numbers))
	for i, n := range numbers {
		starts[i] = len(flat)
		flat = append(flat, g.frames[n].Rolls()...)
	}

	scores := make([]int, len(numbers))
	total := 0

	for i, n := range numbers {
		f := g.frames[n]
		total += f.CountPinsDown()

		if _, last := f.(*LastFrame); !last {
			next := starts[i] + f.CountRolls()

			switch {
			case f.IsStrike():
				total += lookAhead(flat, next, 2)
			case f.IsSpare():
				total += lookAhead(flat, next, 1)
			}
		}

		scores[i] = total
	}

	return scores
}

func lookAhead(flat []int, from, count int) int {
	sum := 0
	for i := from; i < len(flat) && i < from+count; i++ {
		sum += flat[i]
	}

	return sum
}

func (g *Game) numbers() []int {
	numbers := make([]int, 0, len(g.frames))
	for n := range g.frames {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	return numbers
}

// current returns the first open frame, or a new frame following the last
// one; fresh is true when that frame is not stored in the game yet.
func (g *Game) current() (frame Frame, fresh bool, err error) {
	numbers := g.numbers()
	for _, n := range numbers {
		if f := g.frames[n]; !f.IsClosed() {
			return f, false, nil
		}
	}

	next := 0
	if len(numbers) > 0 {
		next = numbers[len(numbers)-1] + 1
	}

	if next > LastFrameNumber {
		return nil, false, invalidRoll("The game is over")
	}

	return newFrame(next), true, nil
}
