package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"wedshare/internal/infrastructure/broker"
	"wedshare/internal/infrastructure/database"
	"wedshare/internal/infrastructure/minio"
	"wedshare/internal/infrastructure/relational"
	"wedshare/internal/infrastructure/selector"
	"wedshare/internal/presentation/router"
	"wedshare/pkg/logger"
)

const (
	defaultAddress    = ":5000"
	defaultMaxSizeMB  = 50
	defaultStreamName = "photos"
	defaultGroupName  = "feed"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTP            HTTPConfig             `yaml:"http"`
	Upload          UploadConfig           `yaml:"upload"`
	CredentialsPath string                 `yaml:"credentials_path"`
	DBConfig        database.Config        `yaml:"db_config"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	Relational      relational.Config      `yaml:"relational"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPConfig struct {
	Address string        `yaml:"address"`
	Router  router.Config `yaml:",inline"`
}

type UploadConfig struct {
	MaxSizeMB int64 `yaml:"max_size_mb"`

	// DownloadTimeout bounds fetching a remote image for /download.
	DownloadTimeout int64 `yaml:"download_timeout_in_ms"`
}

// MaxBytes is the per-file upload limit in bytes.
func (u UploadConfig) MaxBytes() int64 {
	return u.MaxSizeMB << 20
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	if err := config.applyEnv(os.Getenv); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	config.applyDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if port := getenv("PORT"); port != "" {
		c.HTTP.Address = ":" + port
	}

	if dsn := getenv("DATABASE_URL"); dsn != "" {
		c.Relational.DSN = dsn
	}

	if uri := getenv("BROKER_URI"); uri != "" {
		c.BrokerConfig.URI = uri
	}

	if size := getenv("UPLOAD_MAX_SIZE_MB"); size != "" {
		mb, err := strconv.ParseInt(size, 10, 64)
		if err != nil {
			return fmt.Errorf("UPLOAD_MAX_SIZE_MB: %w", err)
		}
		c.Upload.MaxSizeMB = mb
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = defaultAddress
	}

	if c.Upload.MaxSizeMB == 0 {
		c.Upload.MaxSizeMB = defaultMaxSizeMB
	}

	if c.BrokerConfig.StreamName == "" {
		c.BrokerConfig.StreamName = defaultStreamName
	}

	if c.BrokerConfig.GroupName == "" {
		c.BrokerConfig.GroupName = defaultGroupName
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Upload.MaxSizeMB < 0 {
		return errors.New("upload.max_size_mb must be positive")
	}

	if c.HTTP.Router.RateLimit < 0 {
		return errors.New("http.rate_limit can't be negative")
	}

	timeouts := map[string]int64{
		"db_config.connection_timeout_in_ms":  c.DBConfig.ConnectionTimeout,
		"db_config.query_timeout_in_ms":       c.DBConfig.QueryTimeout,
		"minio_uploader.timeout_in_ms":        c.MinIOUploader.Timeout,
		"minio_remover.timeout_in_ms":         c.MinIORemover.Timeout,
		"publisher_config.timeout_in_ms":      int64(c.PublisherConfig.Timeout),
		"upload.download_timeout_in_ms":       c.Upload.DownloadTimeout,
		"relational.connection_timeout_in_ms": c.Relational.ConnectionTimeout,
	}

	for name, v := range timeouts {
		if v <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	return nil
}

// Selector returns the settings the storage selector chooses a backend with.
func (c *Config) Selector() selector.Config {
	return selector.Config{
		Database:        c.DBConfig,
		Uploader:        c.MinIOUploader,
		Remover:         c.MinIORemover,
		Relational:      c.Relational,
		CredentialsPath: c.CredentialsPath,
	}
}
