package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeDebug   = "debug"
	ModeRelease = "release"
)

type Config struct {
	Env    string       `yaml:"env" env:"ENV" env-default:"local"`
	Log    LogConfig    `yaml:"log"`
	API    APIConfig    `yaml:"api"`
	HTTP   HTTPConfig   `yaml:"http"`
	Jaeger JaegerConfig `yaml:"jaeger"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// APIConfig selects the backend by build mode and bounds every request.
type APIConfig struct {
	Mode            string        `yaml:"mode" env:"API_MODE" env-default:"debug"`
	DebugBaseURL    string        `yaml:"debug_base_url" env:"API_DEBUG_BASE_URL" env-default:"http://127.0.0.1:3000"`
	ReleaseBaseURL  string        `yaml:"release_base_url" env:"API_RELEASE_BASE_URL" env-default:"https://api.yourapp.com"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"API_REQUEST_TIMEOUT" env-default:"30s"`
	ResourceTimeout time.Duration `yaml:"resource_timeout" env:"API_RESOURCE_TIMEOUT" env-default:"60s"`
}

// BaseURL implements ports.BaseURLProvider.
func (c APIConfig) BaseURL() string {
	if strings.EqualFold(strings.TrimSpace(c.Mode), ModeRelease) {
		return c.ReleaseBaseURL
	}
	return c.DebugBaseURL
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"70s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// JaegerConfig leaves tracing off when Collector is empty.
type JaegerConfig struct {
	Collector   string `yaml:"collector" env:"JAEGER_COLLECTOR"`
	ServiceName string `yaml:"service_name" env:"JAEGER_SERVICE_NAME" env-default:"brackets"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exists: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}

	return &cfg
}

// LoadEnv builds the config from environment variables and defaults only;
// used by the terminal client when no config file exists.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
