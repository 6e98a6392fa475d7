package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/httpserver"
	"github.com/robalobadob/wordle/internal/store"
)

const sweepInterval = time.Minute

func serveCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Port = port
			}
			// JSON logs for the server, not the console writer set up for play.
			log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st := store.NewMemoryStore()
			go sweep(ctx, st, a.cfg.SessionTTL)

			srv := &http.Server{
				Addr:              ":" + a.cfg.Port,
				Handler:           httpserver.New(st, a.words, a.cfg).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			errc := make(chan error, 1)
			go func() {
				log.Info().Str("port", a.cfg.Port).Msg("starting server")
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 5175)")
	return cmd
}

// sweep evicts idle sessions until ctx is done.
func sweep(ctx context.Context, st store.Store, ttl time.Duration) {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := st.Sweep(ctx, now.Add(-ttl)); n > 0 {
				log.Debug().Int("sessions", n).Msg("swept idle sessions")
			}
		}
	}
}
