package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultAPIAddress = "http://localhost:8080"
	DefaultWorkers    = 4
)

// ClientConfig настройки консольного клиента. Флаги командной строки перекрывают окружение.
type ClientConfig struct {
	APIAddress string `env:"TAGIHAN_API"`
	Token      string `env:"TAGIHAN_TOKEN"`
	Workers    int    `env:"TAGIHAN_WORKERS"`
}

// LoadClientConfig читает окружение (и .env) и заполняет пустые поля значениями по умолчанию.
func LoadClientConfig() (*ClientConfig, error) {
	loadDotEnv()

	var conf ClientConfig
	if err := env.Parse(&conf); err != nil {
		return nil, fmt.Errorf("parse env config: %s", err.Error())
	}
	conf.APIAddress = defaultIfBlank(conf.APIAddress, DefaultAPIAddress)
	if conf.Workers <= 0 {
		conf.Workers = DefaultWorkers
	}
	return &conf, nil
}
