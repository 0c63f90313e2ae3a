package selector

import (
	"wedshare/internal/domain/repository/storage"
	"wedshare/internal/infrastructure/cloud"
	"wedshare/internal/infrastructure/database"
	"wedshare/internal/infrastructure/memory"
	"wedshare/internal/infrastructure/minio"
	"wedshare/internal/infrastructure/relational"
	"wedshare/pkg/logger"
)

// Config carries the settings every candidate backend may need. Remote
// addresses and secrets come from the credential blob, timeouts from here.
type Config struct {
	Database        database.Config
	Uploader        minio.UploaderConfig
	Remover         minio.RemoverConfig
	Relational      relational.Config
	CredentialsPath string
}

// Select picks the storage backend once at start: document store when
// credentials are present, relational when a DSN is set, memory otherwise.
// The returned closer releases any connection the backend holds.
func Select(cfg Config, getenv func(string) string) (storage.Backend, func()) {
	if creds, present := cloud.LookupCredentials(getenv, cfg.CredentialsPath); present {
		return documentBackend(cfg, creds)
	}

	if cfg.Relational.DSN != "" {
		db, err := relational.Connect(cfg.Relational)
		if err != nil {
			logger.Error("can't connect to relational database", "err", err)

			return relational.NewBackend(nil), func() {}
		}

		logger.Info("storage backend selected", "backend", relational.Name)

		return relational.NewBackend(db), func() {
			if err := relational.Close(db); err != nil {
				logger.Error("can't close relational database", "err", err)
			}
		}
	}

	logger.Info("storage backend selected", "backend", memory.Name)

	return memory.New(), func() {}
}

// documentBackend binds whichever halves of the document backend the
// credentials allow. A half that fails to connect stays unbound.
func documentBackend(cfg Config, creds *cloud.Credentials) (storage.Backend, func()) {
	closer := func() {}

	if creds == nil {
		logger.Warn("document store credentials present but unusable, backend unbound")

		return cloud.NewBackend(nil, nil), closer
	}

	var meta *cloud.Metadata
	if creds.HasDatabase() {
		dbCfg := cfg.Database
		dbCfg.URI = creds.DatabaseURI
		if creds.DatabaseName != "" {
			dbCfg.DBName = creds.DatabaseName
		}

		db, err := database.Connect(dbCfg)
		if err != nil {
			logger.Error("can't connect to document store", "err", err)
		} else {
			users := database.NewUserStore(db)
			meta = &cloud.Metadata{
				PhotoWriter:    database.NewPhotoWriter(db),
				PhotoLister:    database.NewPhotoLister(db),
				PhotoRetriever: database.NewPhotoRetriever(db),
				UserWriter:     users,
				UserRetriever:  users,
			}
			closer = func() {
				if err := db.Stop(); err != nil {
					logger.Error("can't close document store", "err", err)
				}
			}
		}
	}

	var objects *cloud.Objects
	if creds.HasStorage() {
		client, err := minio.New(&minio.ClientConfig{
			AccessKey: creds.AccessKey,
			SecretKey: creds.SecretKey,
			Endpoint:  creds.StorageEndpoint,
			Secure:    creds.Secure,
		})
		if err != nil {
			logger.Error("can't create object store client", "err", err)
		} else {
			upCfg := cfg.Uploader
			upCfg.Bucket = creds.Bucket
			if creds.PublicBaseURL != "" {
				upCfg.PublicBaseURL = creds.PublicBaseURL
			}
			rmCfg := cfg.Remover

			objects = &cloud.Objects{
				Uploader: minio.NewUploader(client, &upCfg),
				Remover:  minio.NewRemover(client, creds.Bucket, &rmCfg),
				Opener:   minio.NewOpener(client, creds.Bucket),
			}
		}
	}

	logger.Info("storage backend selected", "backend", cloud.Name,
		"metadata", meta != nil, "objects", objects != nil)

	return cloud.NewBackend(meta, objects), closer
}
