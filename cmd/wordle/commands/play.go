package commands

import (
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/terminal"
)

func playCmd(a *app) *cobra.Command {
	var (
		useDaily bool
		answer   string
		noDict   bool
		noColor  bool
		noShare  bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			secret := strings.ToLower(strings.TrimSpace(answer))
			switch {
			case secret != "":
			case useDaily:
				secret = daily.Answer(a.words, time.Now(), a.cfg.DailySalt)
			default:
				secret = a.words.Random()
			}

			g, err := game.New(secret)
			if err != nil {
				return err
			}
			log.Debug().Bool("daily", useDaily).Msg("game created")

			opts := terminal.Options{Words: a.words, NoShare: noShare}
			if noDict {
				opts.Words = nil
			}
			_, err = terminal.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), g, opts)
			return err
		},
	}

	cmd.Flags().BoolVar(&useDaily, "daily", false, "play the word of the day")
	cmd.Flags().StringVar(&answer, "answer", "", "fixed secret word")
	cmd.Flags().BoolVar(&noDict, "no-dict", false, "accept any five letter guess, not only dictionary words")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&noShare, "no-share", false, "skip the emoji summary")
	_ = cmd.Flags().MarkHidden("answer")
	return cmd
}
