package cloud

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"wedshare/pkg/logger"
)

const (
	EnvCredentials     = "DOCSTORE_CREDENTIALS"
	EnvCredentialsFile = "DOCSTORE_CREDENTIALS_FILE"
	LocalCredentials   = "docstore-credentials.json"
)

// Credentials is the service credential blob for the document and object stores.
type Credentials struct {
	DatabaseURI     string `json:"database_uri"`
	DatabaseName    string `json:"database_name"`
	StorageEndpoint string `json:"storage_endpoint"`
	AccessKey       string `json:"access_key"`
	SecretKey       string `json:"secret_key"`
	Bucket          string `json:"bucket"`
	PublicBaseURL   string `json:"public_base_url"`
	Secure          bool   `json:"secure"`
}

func (c *Credentials) HasDatabase() bool {
	return c.DatabaseURI != ""
}

func (c *Credentials) HasStorage() bool {
	return c.StorageEndpoint != "" && c.Bucket != ""
}

func parseCredentials(data []byte) (*Credentials, error) {
	creds := &Credentials{}
	if err := json.Unmarshal(data, creds); err != nil {
		return nil, err
	}

	if !creds.HasDatabase() && !creds.HasStorage() {
		return nil, errors.New("credentials define neither a database nor a storage endpoint")
	}

	return creds, nil
}

// LookupCredentials checks, in order, the inline blob, the file named by
// EnvCredentialsFile and the local credential file. present reports whether
// any source exists; creds is the first one that parsed, or nil.
func LookupCredentials(getenv func(string) string, localPath string) (creds *Credentials, present bool) {
	type source struct {
		name string
		load func() ([]byte, bool)
	}

	readFile := func(path string) ([]byte, bool) {
		if path == "" {
			return nil, false
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.Warn("can't read credential file", "path", path, "err", err)

				return nil, true
			}

			return nil, false
		}

		return data, true
	}

	sources := []source{
		{EnvCredentials, func() ([]byte, bool) {
			v := getenv(EnvCredentials)

			return []byte(v), v != ""
		}},
		{EnvCredentialsFile, func() ([]byte, bool) { return readFile(getenv(EnvCredentialsFile)) }},
		{localPath, func() ([]byte, bool) { return readFile(localPath) }},
	}

	for _, s := range sources {
		data, ok := s.load()
		if !ok {
			continue
		}
		present = true

		if data == nil {
			continue
		}

		c, err := parseCredentials(data)
		if err != nil {
			logger.Warn("invalid document store credentials", "source", s.name, "err", err)

			continue
		}

		logger.Info("document store credentials loaded", "source", s.name)

		return c, true
	}

	return nil, present
}

func (c *Credentials) String() string {
	return fmt.Sprintf("Credentials{db=%s storage=%s bucket=%s}", c.DatabaseName, c.StorageEndpoint, c.Bucket)
}
