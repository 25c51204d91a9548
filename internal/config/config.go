package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server Server `yaml:"server"`
	Data   Data   `yaml:"data"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

// Data selects the table source backend. The CSV directory is the default;
// the database backends read the same six tables from a warehouse.
type Data struct {
	Source   string `yaml:"source"` // csv, postgres, mysql, or mongo
	Dir      string `yaml:"dir"`
	Postgres string `yaml:"postgres"`
	MySQL    string `yaml:"mysql"`
	Mongo    Mongo  `yaml:"mongo"`
}

type Mongo struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	if config.Server.Addr == "" {
		config.Server.Addr = ":8085"
	}
	if config.Data.Source == "" {
		config.Data.Source = "csv"
	}
	if config.Data.Dir == "" {
		config.Data.Dir = "data"
	}
	switch config.Data.Source {
	case "csv", "postgres", "mysql", "mongo":
	default:
		return nil, fmt.Errorf("unsupported data source: %s", config.Data.Source)
	}

	return config, nil
}
