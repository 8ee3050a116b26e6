package main

import "github.com/tyler180/nfl-odds-board/cmd/odds/cmd"

func main() {
	cmd.Execute()
}
