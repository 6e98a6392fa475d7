package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/words"
)

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	cfg   config.Config
	words *words.List
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		logLevel    string
		answersFile string
		allowedFile string
	)

	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the five letter word in six tries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.Load()
			if cmd.Flags().Changed("log-level") {
				a.cfg.LogLevel = logLevel
			}
			if answersFile != "" {
				a.cfg.AnswersFile = answersFile
			}
			if allowedFile != "" {
				a.cfg.AllowedFile = allowedFile
			}

			lvl, err := zerolog.ParseLevel(a.cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level %q: %w", a.cfg.LogLevel, err)
			}
			zerolog.SetGlobalLevel(lvl)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

			if a.words, err = words.Load(a.cfg.AnswersFile, a.cfg.AllowedFile); err != nil {
				return fmt.Errorf("failed to load word lists: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&answersFile, "answers", "", "answers word list file (default: embedded)")
	root.PersistentFlags().StringVar(&allowedFile, "allowed", "", "allowed guesses word list file (default: embedded)")

	root.AddCommand(playCmd(a), serveCmd(a), wordsCmd(a))
	return root
}
