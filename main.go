package main

import "github.com/mouse-blink/bowlscore/cmd"

func main() {
	cmd.Execute()
}
