package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"wellness-quiz-service/internal/app"
	"wellness-quiz-service/internal/config"
	"wellness-quiz-service/internal/infra/memory"
	transport "wellness-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if portFlag != "" {
		cfg.Server.Port = portFlag
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
			return err
		}
	}

	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open backends", err)
		return err
	}
	defer b.Close()

	// in-memory mode has nothing persisted, so the demo accounts are created on boot
	if b.db == nil {
		if err := seedDemoUsers(ctx, b.store, b.board, bcrypt.DefaultCost, log); err != nil {
			return err
		}
	}

	players := app.NewPlayerService(b.store, b.questions, b.board, log)
	auth := app.NewAuthService(b.store, b.sessions, players, log)
	games := app.NewGameService(memory.NewGameStore(), players, b.questions, log)
	go games.RunJanitor(ctx, time.Minute)

	handler := transport.NewHandler(auth, players, games, log, cfg.Server.SecureCookie)
	ws := transport.NewWSHandler(games, log)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           transport.NewRouter(handler, ws, cfg.Server.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		// no write timeout: game websockets stay open across questions
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting quiz service", zap.String("addr", server.Addr), zap.String("environment", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server failed", err)
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
