package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func wordsCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show the loaded word lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			answers, allowed := a.words.Stats()
			fmt.Fprintf(out, "answers: %d\nallowed: %d\n", answers, allowed)
			if list {
				for _, w := range a.words.Answers() {
					fmt.Fprintln(out, w)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print every answer")
	return cmd
}
