package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wedshare"
	"wedshare/pkg/logger"
)

var runCmd = &cobra.Command{
	Use:   "run <config>",
	Short: "Start the HTTP server",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return HandleRun(args[0])
	},
}

func HandleRun(path string) error {
	a, err := newApp(path)
	if err != nil {
		return err
	}
	defer a.close()

	logger.Info("running wedshare", "version", wedshare.StringVersion(),
		"address", a.cfg.HTTP.Address, "storage", a.backend.Name())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(a.cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("shutting down server: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return a.server.Shutdown(shutdownCtx)
}
