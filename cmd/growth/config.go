package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config mirrors the etl connection flags so deployments can keep DSNs and
// tokens out of shell history.
type Config struct {
	Postgres PostgresConfig `toml:"postgres"`
	Influx   InfluxConfig   `toml:"influx"`
}

type PostgresConfig struct {
	DSN              string `toml:"dsn"`
	SetTable         string `toml:"set_table"`
	AssessmentTable  string `toml:"assessment_table"`
	TrendTable       string `toml:"trend_table"`
	CorrelationTable string `toml:"correlation_table"`
}

type InfluxConfig struct {
	Host   string `toml:"host"`
	Token  string `toml:"token"`
	Org    string `toml:"org"`
	Bucket string `toml:"bucket"`
}

func LoadConfig(path string) (*Config, error) {
	var config Config
	_, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return &config, nil
}
