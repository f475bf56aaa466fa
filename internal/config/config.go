package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
)

type Config struct {
	APIBaseURL     string        `yaml:"api_base_url" json:"api_base_url"`
	APIIngestPath  string        `yaml:"api_ingest_path" json:"api_ingest_path"`
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout"`

	ListenAddr string        `yaml:"listen_addr" json:"listen_addr"`
	SessionTTL time.Duration `yaml:"session_ttl" json:"session_ttl"`
	GCInterval time.Duration `yaml:"gc_interval" json:"gc_interval"`
}

// Default возвращает конфигурацию для локального запуска против стаба.
func Default() *Config {
	return &Config{
		APIBaseURL:    "http://localhost:8080",
		APIIngestPath: ingestproto.IngestRequestsPath,
		ListenAddr:    ":8080",
		SessionTTL:    24 * time.Hour,
		GCInterval:    30 * time.Minute,
	}
}

// Load читает YAML-конфигурацию из CONFIG_PATH, применяет ENV-переопределения и возвращает актуальную структуру.
// Отсутствие файла по пути по умолчанию не ошибка; явно указанный путь обязан существовать.
func Load() (*Config, error) {
	path := os.Getenv(configPathEnv)
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	return LoadFile(path, explicit)
}

// LoadFile читает конфигурацию из path; required=false разрешает отсутствие файла.
func LoadFile(path string, required bool) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return nil, err
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	return c, nil
}

// IngestURL — {api_base_url}{api_ingest_path}, адрес первого шага рукопожатия.
func (c *Config) IngestURL() string {
	path := c.APIIngestPath
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(c.APIBaseURL, "/") + path
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("API_INGEST_PATH"); v != "" {
		c.APIIngestPath = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"REQUEST_TIMEOUT", &c.RequestTimeout},
		{"SESSION_TTL", &c.SessionTTL},
		{"GC_INTERVAL", &c.GCInterval},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	return nil
}
