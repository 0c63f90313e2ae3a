package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"wedshare/config"
	"wedshare/internal/application/usecase"
	"wedshare/internal/application/usecase/abstraction"
	"wedshare/internal/domain/errs"
	domainbroker "wedshare/internal/domain/repository/broker"
	"wedshare/internal/infrastructure/broker"
	"wedshare/internal/infrastructure/selector"
	"wedshare/pkg/logger"
)

var feedWorkers int

var feedCmd = &cobra.Command{
	Use:   "feed <config>",
	Short: "Follow newly shared photos on the broker stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return HandleFeed(args[0], feedWorkers)
	},
}

func init() {
	feedCmd.Flags().IntVarP(&feedWorkers, "workers", "w", 1, "number of stream consumers")
}

func HandleFeed(path string, workers int) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger.InitGlobalLogger(&cfg.Logger)

	if cfg.BrokerConfig.URI == "" {
		return errors.New("feed needs a broker: set BROKER_URI or redis_broker_config.uri")
	}

	client, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		return err
	}
	defer client.Close()

	backend, closeBackend := selector.Select(cfg.Selector(), os.Getenv)
	defer closeBackend()

	getter := usecase.NewGetter(backend)
	receiver := broker.NewReceiver(client)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		name := fmt.Sprintf("feed-%d", i)
		g.Go(func() error {
			return consume(ctx, receiver, getter, name)
		})
	}

	return g.Wait()
}

func consume(ctx context.Context, receiver domainbroker.Receiver, getter abstraction.Getter, name string) error {
	messages, err := receiver.Messages(ctx, name)
	if err != nil {
		return err
	}

	for msg := range messages {
		photo, err := getter.GetPhoto(ctx, msg.Body())
		switch {
		case errors.Is(err, errs.ErrNotFound):
			logger.Warn("announced photo is gone", "id", msg.Body())
		case err != nil:
			logger.Error("can't load announced photo", "id", msg.Body(), "err", err)

			continue
		default:
			logger.Info("new photo", "id", photo.ID, "guest", photo.GuestName,
				"filename", photo.Filename, "consumer", name)
		}

		if err := msg.Ack(); err != nil {
			logger.Error("can't ack message", "id", msg.ID(), "err", err)
		}
	}

	return nil
}
