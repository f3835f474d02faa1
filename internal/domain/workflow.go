// Package domain implements the bowlscore use-cases on top of the bowling package.
package domain

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/bowlscore/internal/adapter"
	"github.com/mouse-blink/bowlscore/internal/controller"
	"github.com/mouse-blink/bowlscore/internal/domain/bowling"
	m "github.com/mouse-blink/bowlscore/internal/model"
)

// ErrInvalidSheet is returned when at least one scored sheet breaks a bowling rule.
var ErrInvalidSheet = errors.New("invalid sheet")

// ErrNoSheets is returned when the provided paths hold no sheet.
var ErrNoSheets = errors.New("no sheets found")

// RollArgs holds the arguments for scoring a sequence of marks.
type RollArgs struct {
	Title string
	Marks []string
	Table bool
}

// ScoreArgs holds the arguments for scoring sheet files.
type ScoreArgs struct {
	Paths   []m.Path
	Threads int
	Table   bool
}

// PlayArgs holds the arguments for an interactive game.
type PlayArgs struct {
	// Marks are recorded before the player takes over.
	Marks []string
}

// Workflow defines the bowlscore operations.
type Workflow interface {
	Roll(args RollArgs) error
	Score(args ScoreArgs) error
	Play(args PlayArgs) error
}

type workflow struct {
	store adapter.SheetStore
	ui    controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(store adapter.SheetStore, ui controller.UI) Workflow {
	return &workflow{
		store: store,
		ui:    ui,
	}
}

// Roll scores marks rolled one after the other from the first frame.
func (w *workflow) Roll(args RollArgs) error {
	game, rollErr := rollMarks(args.Marks)

	result := newResult(game)
	result.Sheet = m.Sheet{Title: args.Title}
	result.Err = rollErr

	if err := w.ui.Start(cardMode(args.Table)); err != nil {
		return err
	}
	defer w.ui.Close()

	if err := w.ui.DisplayResult(result); err != nil {
		return err
	}

	return rollErr
}

// Score loads and scores every sheet found under args.Paths, using up to
// args.Threads workers. Results are displayed in the order the sheets were found.
func (w *workflow) Score(args ScoreArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	paths, err := w.store.Find(args.Paths)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		return ErrNoSheets
	}

	results := make([]m.Result, len(paths))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			sheet, err := w.store.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", path, err)
			}

			results[i] = ScoreSheet(sheet)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.display(results, args.Table)
}

// Play lets the player enter a game roll by roll.
func (w *workflow) Play(args PlayArgs) error {
	game, err := rollMarks(args.Marks)
	if err != nil {
		return err
	}

	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	return w.ui.Play(game)
}

func (w *workflow) display(results []m.Result, table bool) error {
	if err := w.ui.Start(cardMode(table)); err != nil {
		return err
	}
	defer w.ui.Close()

	invalid := 0

	for _, result := range results {
		if result.Err != nil {
			invalid++
		}

		if err := w.ui.DisplayResult(result); err != nil {
			return err
		}
	}

	if len(results) > 1 {
		if err := w.ui.DisplaySummary(results); err != nil {
			return err
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d sheets break bowling rules", ErrInvalidSheet, invalid, len(results))
	}

	return nil
}

// rollMarks records marks into a new game. On error the game holds the
// rolls recorded before the offending mark.
func rollMarks(marks []string) (*bowling.Game, error) {
	game := bowling.NewGame()

	for i, mark := range marks {
		if err := game.RollMark(mark); err != nil {
			return game, fmt.Errorf("roll %d (%s): %w", i+1, mark, err)
		}
	}

	return game, nil
}

func cardMode(table bool) controller.StartOption {
	if table {
		return controller.WithTableMode()
	}

	return controller.WithCardMode()
}
