package main

import (
	"fmt"

	"github.com/ougirez/energy-dashboard/internal/pkg/config"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
	"github.com/ougirez/energy-dashboard/internal/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flags onto config keys; a flag only overrides
// the lower layers when it is set explicitly.
var flagKeys = map[string]string{
	"api-url":   constants.ViperAPIURLKey,
	"log-level": constants.ViperLogLevelKey,
	"listen":    constants.ViperListenAddrKey,
}

func loadConfig(cmd *cobra.Command, configFile string) (config.Config, error) {
	v, err := config.NewViper(configFile)
	if err != nil {
		return config.Config{}, err
	}

	if err := bindFlags(cmd, v); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("viper.BindPFlag %s: %w", flag, err)
		}
	}
	return nil
}
