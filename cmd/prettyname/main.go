package main

import (
	"os"

	"prettyname/cmd"
)

func main() {
	os.Exit(cmd.Run())
}
