package controller

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/bowlscore/internal/domain/bowling"
)

// playModel asks for one roll at a time and redraws the scorecard.
type playModel struct {
	game  *bowling.Game
	input textinput.Model
	err   error
	done  bool
}

func newPlayModel(game *bowling.Game) playModel {
	input := textinput.New()
	input.Placeholder = "0-10, X, / or -"
	input.CharLimit = 2
	input.Width = 16
	input.Focus()

	return playModel{
		game:  game,
		input: input,
		done:  game.IsComplete(),
	}
}

func (m playModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}

	return textinput.Blink
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// submit records the typed mark. A rejected mark is shown and the same roll
// is asked for again.
func (m playModel) submit() (tea.Model, tea.Cmd) {
	mark := m.input.Value()
	m.input.SetValue("")

	if mark == "" {
		return m, nil
	}

	m.err = m.game.RollMark(mark)

	if m.game.IsComplete() {
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m playModel) View() string {
	score := m.game.CumulativeScore(bowling.LastFrameNumber)

	parts := []string{
		titleStyle.Render("Ten-pin bowling"),
		cardStyle.Render(m.game.String()),
	}

	if m.done {
		parts = append(parts, "Final score "+totalStyle.Render(strconv.Itoa(score)), "")

		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	prompt := "Score " + totalStyle.Render(strconv.Itoa(score))
	if frame, roll, standing, err := m.game.Next(); err == nil {
		prompt = fmt.Sprintf("Frame %d, roll %d (%d standing) %s", frame+1, roll, standing, m.input.View())
	}

	parts = append(parts, prompt)

	if m.err != nil {
		parts = append(parts, errorStyle.Render("✗ "+m.err.Error()))
	}

	parts = append(parts, mutedStyle.Render("enter to roll • esc to quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
