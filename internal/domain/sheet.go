package domain

import (
	"fmt"

	"github.com/mouse-blink/bowlscore/internal/domain/bowling"
	m "github.com/mouse-blink/bowlscore/internal/model"
)

// BuildGame turns a sheet into a game, one frame per sheet entry. On error
// the game holds every frame recorded before the offending one.
func BuildGame(sheet m.Sheet) (*bowling.Game, error) {
	game := bowling.NewGame()

	if len(sheet.Frames) > bowling.Frames {
		return game, fmt.Errorf("sheet has %d frames, a game has %d", len(sheet.Frames), bowling.Frames)
	}

	for i, pins := range sheet.Frames {
		var frame bowling.Frame = bowling.NewNormalFrame(i)
		if i == bowling.LastFrameNumber {
			frame = bowling.NewLastFrame(i)
		}

		if _, err := bowling.Roll(frame, pins...); err != nil {
			return game, fmt.Errorf("frame %d: %w", i+1, err)
		}

		if err := game.AddFrame(frame); err != nil {
			return game, fmt.Errorf("frame %d: %w", i+1, err)
		}
	}

	return game, nil
}

// ScoreSheet builds and scores sheet.
func ScoreSheet(sheet m.Sheet) m.Result {
	game, err := BuildGame(sheet)

	result := newResult(game)
	result.Sheet = sheet
	result.Err = err

	return result
}

func newResult(game *bowling.Game) m.Result {
	result := m.Result{
		Scorecard:   game.String(),
		FrameScores: game.FrameScores(),
		Total:       game.CumulativeScore(bowling.LastFrameNumber),
		Complete:    game.IsComplete(),
	}

	for _, frame := range game.Frames() {
		result.Marks = append(result.Marks, frame.String())
	}

	return result
}
