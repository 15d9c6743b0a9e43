package config

import (
	"fmt"

	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"github.com/spf13/viper"
)

type Config struct {
	API     API            `mapstructure:"api"`
	Backend backend.Config `mapstructure:"backend"`
	UI      UI             `mapstructure:"ui"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type UI struct {
	PageSize    int    `mapstructure:"page_size"`
	ExportSheet string `mapstructure:"export_sheet"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
