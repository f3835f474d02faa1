package bowling

import (
	"fmt"
	"strconv"
	"strings"
)

// Scorecard cell width, borders excluded.
const cellWidth = 4

// String renders the scorecard: frame labels, a separator, the rolls of each
// frame and the cumulative score after each played frame.
//
//	|#1  |#2  |...|#10 |
//	+----+----+...+----|
//	|  36|  X |...| 1/3|
//	|9   |24  |...|109 |
func (g *Game) String() string {
	frames := g.Frames()
	scores := g.FrameScores()

	var header, separator, marks, totals strings.Builder

	for i, f := range frames {
		fmt.Fprintf(&header, "|%-*s", cellWidth, "#"+strconv.Itoa(f.Number()+1))
		separator.WriteString("+" + strings.Repeat("-", cellWidth))
		fmt.Fprintf(&marks, "|%*s", cellWidth, f.String())

		score := ""
		if f.CountRolls() > 0 {
			score = strconv.Itoa(scores[i])
		}

		fmt.Fprintf(&totals, "|%-*s", cellWidth, score)
	}

	header.WriteString("|")
	separator.WriteString("|")
	marks.WriteString("|")
	totals.WriteString("|")

	return strings.Join([]string{header.String(), separator.String(), marks.String(), totals.String()}, "\n")
}
