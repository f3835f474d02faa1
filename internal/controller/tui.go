package controller

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mouse-blink/bowlscore/internal/domain/bowling"
	m "github.com/mouse-blink/bowlscore/internal/model"
)

// Scorecards need this many columns to be drawn inside a border.
const boxedCardWidth = 56

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	totalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements UI using lipgloss styling and Bubble Tea for interactive play.
type TUI struct {
	input  io.Reader
	output io.Writer
	cfg    StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.cfg = newStartConfig(options)

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {

}

// DisplayResult prints a styled scorecard.
func (t *TUI) DisplayResult(result m.Result) error {
	t.println(titleStyle.Render(resultTitle(result)))

	if result.Err != nil {
		t.println(errorStyle.Render("✗ " + result.Err.Error()))
	}

	if len(result.Marks) == 0 {
		return nil
	}

	card := result.Scorecard
	if t.cfg.mode == ModeTable {
		var tableBuffer bytes.Buffer

		renderScoreTable(&tableBuffer, result)
		card = tableBuffer.String()
	}

	t.println(t.frame(card))
	t.println("Score " + totalStyle.Render(strconv.Itoa(result.Total)) + "\n")

	return nil
}

// DisplaySummary prints one styled line per sheet.
func (t *TUI) DisplaySummary(results []m.Result) error {
	for _, result := range results {
		status := mutedStyle.Render(resultStatus(result))
		if result.Err != nil {
			status = errorStyle.Render(resultStatus(result))
		}

		t.println(fmt.Sprintf("%s  %s  %s",
			totalStyle.Width(4).Align(lipgloss.Right).Render(strconv.Itoa(result.Total)),
			resultTitle(result),
			status,
		))
	}

	return nil
}

// Play runs an interactive Bubble Tea program that records rolls into game.
func (t *TUI) Play(game *bowling.Game) error {
	program := tea.NewProgram(newPlayModel(game), tea.WithInput(t.input), tea.WithOutput(t.output))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// frame draws card inside a border when the terminal is wide enough.
func (t *TUI) frame(card string) string {
	if width, ok := t.width(); ok && width < boxedCardWidth {
		return card
	}

	return cardStyle.Render(card)
}

func (t *TUI) width() (int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, false
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, false
	}

	return width, true
}

func (t *TUI) println(line string) {
	_, _ = fmt.Fprintln(t.output, line)
}
