package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var ErrTestingURLMissing = errors.New("testing connection string is not set")

type Config struct {
	Env      string   `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTP     HTTP     `yaml:"http"`
	Postgres Postgres `yaml:"postgres"`
}

type HTTP struct {
	Port         int           `yaml:"port" env:"HTTP_PORT" env-default:"8000"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

type Postgres struct {
	URL            string        `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	TestingURL     string        `yaml:"testing_url" env:"TESTING_URL"`
	MaxConns       int32         `yaml:"max_conns" env:"PG_MAX_CONNS" env-default:"10"`
	MinConns       int32         `yaml:"min_conns" env:"PG_MIN_CONNS" env-default:"2"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"PG_CONNECT_TIMEOUT" env-default:"5s"`
}

// ConnString выбирает строку подключения: боевую или тестовую.
func (p Postgres) ConnString(testing bool) (string, error) {
	if !testing {
		return p.URL, nil
	}
	if p.TestingURL == "" {
		return "", ErrTestingURLMissing
	}
	return p.TestingURL, nil
}

var configPath = flag.String("config", "", "path to config file")

func MustLoad() *Config {
	cfg, err := Load(fetchConfigPath())
	if err != nil {
		panic("failed to read config: " + err.Error())
	}

	return cfg
}

// Load reads .env when present, then either the YAML file at path
// (environment still overrides it) or the environment alone.
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	if !flag.Parsed() {
		flag.Parse()
	}

	res := *configPath
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
