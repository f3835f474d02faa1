package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mouse-blink/bowlscore/internal/domain/bowling"
	m "github.com/mouse-blink/bowlscore/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
	cfg StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.cfg = newStartConfig(options)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayResult prints the scorecard of one sheet, or the rule it broke.
func (s *SimpleUI) DisplayResult(result m.Result) error {
	s.printf("%s\n", resultTitle(result))

	if result.Err != nil {
		s.printf("error: %v\n", result.Err)
	}

	if len(result.Marks) == 0 {
		return nil
	}

	if s.cfg.mode == ModeTable {
		var tableBuffer bytes.Buffer

		renderScoreTable(&tableBuffer, result)
		s.printf("%s\n", tableBuffer.String())

		return nil
	}

	s.printf("%s\n\n", result.Scorecard)

	return nil
}

// DisplaySummary prints one line per scored sheet.
func (s *SimpleUI) DisplaySummary(results []m.Result) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Sheet", "Score", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	best := 0

	for _, result := range results {
		table.Append([]string{result.Sheet.Title, strconv.Itoa(result.Total), resultStatus(result)})

		if result.Err == nil && result.Total > best {
			best = result.Total
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Sheets %d", len(results)),
		strconv.Itoa(best),
		"best",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// Play prompts for rolls on the command input, one mark per line.
func (s *SimpleUI) Play(game *bowling.Game) error {
	scanner := bufio.NewScanner(s.cmd.InOrStdin())

	for !game.IsComplete() {
		frame, roll, _, err := game.Next()
		if err != nil {
			break
		}

		s.printf("Frame %d, roll %d: ", frame+1, roll)

		if !scanner.Scan() {
			s.printf("\n")
			break
		}

		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "q", "quit":
			s.printf("Score: %d\n", game.CumulativeScore(bowling.LastFrameNumber))
			return nil
		}

		if err := game.RollMark(line); err != nil {
			s.printf("%v\n", err)
			continue
		}

		s.printf("%s\n", game.String())
	}

	s.printf("Score: %d\n", game.CumulativeScore(bowling.LastFrameNumber))

	return scanner.Err()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderScoreTable writes a two row table: marks and cumulative scores.
func renderScoreTable(w io.Writer, result m.Result) {
	header := []string{""}
	marks := []string{"Rolls"}
	scores := []string{"Score"}

	for i, mark := range result.Marks {
		header = append(header, "#"+strconv.Itoa(i+1))
		marks = append(marks, strings.TrimRight(mark, " "))

		score := ""
		if strings.TrimSpace(mark) != "" && i < len(result.FrameScores) {
			score = strconv.Itoa(result.FrameScores[i])
		}

		scores = append(scores, score)
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Append(marks)
	table.Append(scores)
	table.Render()
}

func resultTitle(result m.Result) string {
	if result.Sheet.Title != "" {
		return result.Sheet.Title
	}

	if result.Sheet.Origin != "" {
		return string(result.Sheet.Origin)
	}

	return "Game"
}

func resultStatus(result m.Result) string {
	switch {
	case result.Err != nil:
		return "invalid: " + result.Err.Error()
	case result.Complete:
		return "complete"
	default:
		return "in progress"
	}
}
