package main

import (
	"nakala/cmd"

	// Register format plugins
	_ "nakala/format/csv"
	_ "nakala/format/nakala"
)

func main() {
	cmd.Execute()
}
