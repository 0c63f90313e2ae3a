package commands

import (
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"wedshare/config"
	domainbroker "wedshare/internal/domain/repository/broker"
	"wedshare/internal/domain/repository/storage"
	"wedshare/internal/infrastructure/broker"
	"wedshare/internal/infrastructure/selector"
	"wedshare/internal/presentation/router"
	"wedshare/pkg/logger"
)

type app struct {
	cfg     *config.Config
	backend storage.Backend
	server  *echo.Echo
	closers []func()
}

// newApp loads the config at path and builds the HTTP application on the
// storage backend the environment selects.
func newApp(path string) (*app, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger.InitGlobalLogger(&cfg.Logger)

	backend, closeBackend := selector.Select(cfg.Selector(), os.Getenv)
	publisher, closePublisher := newPublisher(cfg)

	client := &http.Client{Timeout: time.Duration(cfg.Upload.DownloadTimeout) * time.Millisecond}
	handlers := router.NewHandlers(backend, publisher, cfg.Upload.MaxBytes(), client)

	return &app{
		cfg:     cfg,
		backend: backend,
		server:  router.New(cfg.HTTP.Router, handlers),
		closers: []func(){closePublisher, closeBackend},
	}, nil
}

// newPublisher announces new photos on the redis stream when a broker is
// configured. The feed is optional, so a broker that can't be reached only
// disables announcements.
func newPublisher(cfg *config.Config) (domainbroker.Publisher, func()) {
	if cfg.BrokerConfig.URI == "" {
		return broker.NopPublisher{}, func() {}
	}

	client, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		logger.Warn("photo feed disabled", "err", err)

		return broker.NopPublisher{}, func() {}
	}

	return broker.NewPublisher(client, cfg.PublisherConfig), func() {
		if err := client.Close(); err != nil {
			logger.Error("can't close broker client", "err", err)
		}
	}
}

func (a *app) close() {
	for _, c := range a.closers {
		c()
	}
}
