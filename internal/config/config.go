package config

import (
	"net"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server ServerConfig `envPrefix:"SERVER_"`
	Kafka  KafkaConfig  `envPrefix:"KAFKA_"`
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
	Host string `env:"HOST" envDefault:"0.0.0.0"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type KafkaConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"team-chat.messages"`
	GroupID string   `env:"GROUP_ID" envDefault:"team-chat"`
	Workers int      `env:"WORKERS" envDefault:"8"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
