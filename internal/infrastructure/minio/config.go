package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Secure    bool
}

type UploaderConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
	// PublicBaseURL prefixes public object URLs; defaults to the endpoint.
	PublicBaseURL string `yaml:"public_base_url"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
