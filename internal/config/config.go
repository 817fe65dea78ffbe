// Package config предоставляет структуры и функцию для загрузки конфигурации
// из переменных окружения. Все значения имеют дефолты для локальной разработки.
package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env        string `env:"ENV" env-default:"local"`
	Mongo      `env-prefix:""`
	HTTPServer `env-prefix:""`
	JWTToken   `env-prefix:""`
	AdminEmail string `env:"ADMIN_EMAIL" env-default:"admin@discountontools.local"`
	Redis      `env-prefix:""`
	RabbitMQ   `env-prefix:""`
	SMTP       `env-prefix:""`
}

// Mongo структура для настройки подключения к документной базе.
type Mongo struct {
	MongoURL string `env:"MONGO_URL" env-default:"mongodb://localhost:27017"`
	DBName   string `env:"DB_NAME" env-default:"discountontools"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `env:"HTTP_ADDRESS" env-default:"0.0.0.0:8080"`
	TimeoutHTTP time.Duration `env:"HTTP_TIMEOUT" env-default:"5s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `env:"JWT_SECRET" env-default:"discount_on_tools_secret_key_2025"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" env-default:"168h"` // 7 дней
}

// Redis структура для настройки кеша каталога. Пустой адрес отключает кеш.
type Redis struct {
	AddressRedis string        `env:"REDIS_ADDRESS" env-default:""`
	RedisPass    string        `env:"REDIS_PASSWORD" env-default:""`
	RedisDB      int           `env:"REDIS_DB" env-default:"0"`
	TimeoutRedis time.Duration `env:"REDIS_TIMEOUT" env-default:"3s"`
}

// RabbitMQ структура для публикации событий заказов. Пустой URL отключает публикацию.
type RabbitMQ struct {
	RabbitURL      string `env:"RABBITMQ_URL" env-default:""`
	RabbitExchange string `env:"RABBITMQ_EXCHANGE" env-default:"storefront.orders"`
}

// SMTP структура для отправки кодов восстановления. Пустой хост включает
// запись кодов в лог вместо отправки писем.
type SMTP struct {
	SMTPHost string `env:"SMTP_HOST" env-default:""`
	SMTPPort string `env:"SMTP_PORT" env-default:"587"`
	SMTPUser string `env:"SMTP_USER" env-default:""`
	SMTPPass string `env:"SMTP_PASS" env-default:""`
}

// MustLoad загружает конфигурацию из окружения. Все параметры имеют
// дефолты для разработки, поэтому загрузка без окружения тоже валидна.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
