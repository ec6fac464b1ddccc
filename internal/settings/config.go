package settings

import (
	"bytes"
	"flag"
	"fmt"
)

const (
	DefaultPort              = 5005
	DefaultMinioEndpoint     = "http://localhost:9000"
	DefaultMinioRegion       = "us-east-1"
	DefaultMinioAccessKey    = "minioadmin"
	DefaultMinioSecretKey    = "minioadmin"
	DefaultKnowledgeEndpoint = "http://localhost:8080/api/knowledge"
)

type Config struct {
	IsDebug     bool
	BindAddress string
	Port        int

	MinioEndpoint  string
	MinioRegion    string
	MinioAccessKey string
	MinioSecretKey string

	knowledgeEndpoint string
	knowledgeId       string
	filterPath        string
}

func (config *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", config.BindAddress, config.Port)
}

// KnowledgeEndpoint is the base URL of the knowledge store's document API.
func (config *Config) KnowledgeEndpoint() string {
	return config.knowledgeEndpoint
}

func (config *Config) KnowledgeId() string {
	return config.knowledgeId
}

func (config *Config) FilterPath() string {
	return config.filterPath
}

func FromFlags(name string, args []string) (*Config, string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var buf bytes.Buffer
	flags.SetOutput(&buf)

	var cfg Config
	flags.BoolVar(&cfg.IsDebug, "debug", false, "Enable debug logging")
	flags.StringVar(&cfg.BindAddress, "bind", "", "Address to bind HTTP listener to (default all interfaces)")
	flags.IntVar(&cfg.Port, "port", DefaultPort, "Port used for HTTP listener")
	flags.StringVar(&cfg.MinioEndpoint, "minio-endpoint", DefaultMinioEndpoint, "Endpoint URL for backing object storage")
	flags.StringVar(&cfg.MinioRegion, "minio-region", DefaultMinioRegion, "Region passed to the object storage client")
	flags.StringVar(&cfg.MinioAccessKey, "minio-access-key", DefaultMinioAccessKey, "Access key for backing object storage")
	flags.StringVar(&cfg.MinioSecretKey, "minio-secret-key", DefaultMinioSecretKey, "Secret key for backing object storage")
	flags.StringVar(&cfg.knowledgeEndpoint, "knowledge-endpoint", DefaultKnowledgeEndpoint, "Base URL for knowledge store document API")
	flags.StringVar(&cfg.knowledgeId, "knowledge-id", "", "Knowledge base that objects are synced into")
	flags.StringVar(&cfg.filterPath, "filters", "", "Optional path to yaml file with per-bucket key filters")

	err := flags.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	logger.Debugf("Parsed configuration: %+v", cfg)

	return &cfg, buf.String(), err
}
