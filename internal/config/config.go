// Package config загружает конфигурацию сервиса из файла и переменных окружения.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"activity-registration-service/internal/model"
)

// Config — главная структура конфигурации приложения.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

// ServerConfig описывает параметры HTTP-сервера.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// CORSConfig описывает разрешённые origin'ы для браузерного фронтенда.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SeedConfig указывает на внешний YAML-файл с каталогом кружков.
// Если File пуст, используется встроенный каталог.
type SeedConfig struct {
	File string `mapstructure:"file"`
}

// Load читает config.yaml (если он есть) с возможностью переопределения
// через переменные окружения вида SERVER_ADDR, CORS_ALLOWED_ORIGINS.
// Перед этим подхватывается .env из рабочей директории.
func Load() (*Config, error) {
	// .env опционален, его отсутствие — не ошибка
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("seed.file", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Server.Addr == "" {
		return nil, fmt.Errorf("server.addr must not be empty")
	}

	return &cfg, nil
}

type seedActivity struct {
	Name            string   `mapstructure:"name"`
	Description     string   `mapstructure:"description"`
	Schedule        string   `mapstructure:"schedule"`
	MaxParticipants int      `mapstructure:"max_participants"`
	Participants    []string `mapstructure:"participants"`
}

// LoadActivities читает каталог кружков из YAML-файла.
// Формат: ключ activities со списком кружков.
func LoadActivities(path string) ([]model.Activity, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var raw struct {
		Activities []seedActivity `mapstructure:"activities"`
	}
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("unmarshal seed file %s: %w", path, err)
	}

	if len(raw.Activities) == 0 {
		return nil, fmt.Errorf("seed file %s contains no activities", path)
	}

	activities := make([]model.Activity, 0, len(raw.Activities))
	for _, a := range raw.Activities {
		activities = append(activities, model.Activity{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		})
	}

	return activities, nil
}
