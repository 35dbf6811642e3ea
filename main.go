package main

import (
	"github.com/subosito/gotenv"

	"github.com/tesserex/custody/cmd"
)

func main() {
	// load a local .env if present, ENV always wins
	_ = gotenv.Load()

	cmd.Execute()
}
