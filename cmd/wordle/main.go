// Command wordle plays the word guessing game in the terminal or serves it
// over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/robalobadob/wordle/cmd/wordle/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
