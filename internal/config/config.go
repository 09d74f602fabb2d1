package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`
	// AdminUsername и AdminPassword задают администратора, который создается при старте, если его еще нет.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// String скрывает секреты, конфиг пишется в лог при старте.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s AdminUsername:%s DatabaseDSN:*** JWTSecret:***}",
		c.RunAddress, c.MigrationsDir, c.AdminUsername,
	)
}

// LoadConfig собирает конфиг из .env файла (если есть), переменных окружения и флагов. Переменные
// окружения имеют приоритет над флагами.
func LoadConfig(args []string) (*Config, error) {
	loadDotEnv()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %w", flagsErr)
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	if (conf.AdminUsername == "") != (conf.AdminPassword == "") {
		return nil, errors.New("admin username and password must be set together")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("tagihan-server", flag.ContinueOnError)

	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.JWTSecret, "s", "", "Secret key for signing auth tokens")
	fs.StringVar(&flagConfig.AdminUsername, "admin-user", "", "Bootstrap admin username")
	fs.StringVar(&flagConfig.AdminPassword, "admin-password", "", "Bootstrap admin password")

	return fs.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:     defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		AdminUsername: defaultIfBlank(envConfig.AdminUsername, flagsConfig.AdminUsername),
		AdminPassword: defaultIfBlank(envConfig.AdminPassword, flagsConfig.AdminPassword),
	}
}

// loadDotEnv подгружает .env из рабочей директории. Отсутствие файла не ошибка, уже выставленные
// переменные окружения не перезаписываются.
func loadDotEnv() {
	_ = godotenv.Load()
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
