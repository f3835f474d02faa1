package model

// Result holds the outcome of scoring one sheet.
type Result struct {
	Sheet Sheet
	// Scorecard is the plain text scorecard of the game.
	Scorecard string
	// Marks holds the rendered rolls of each played frame ("X ", "5/", "1/3").
	Marks []string
	// FrameScores is the cumulative score after each played frame.
	FrameScores []int
	Total       int
	Complete    bool
	Err         error // set when the sheet breaks a bowling rule
}
