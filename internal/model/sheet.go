// Package model defines the data structures exchanged between bowlscore layers.
package model

// Path represents a file system path.
type Path string

// Sheet is a bowling game as written down by hand: one list of pin counts
// per frame, frame 1 first. The tenth entry may hold up to three rolls.
type Sheet struct {
	Title  string  `yaml:"title,omitempty"`
	Frames [][]int `yaml:"frames"`
	// Origin is the file the sheet was read from, empty for sheets built in memory.
	Origin Path `yaml:"-"`
}
