package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
	"github.com/spf13/viper"
)

type Config struct {
	APIURL           string
	ListenAddr       string
	Fetch            FetchConfig
	Report           ReportConfig
	Log              LogConfig
	CORSAllowOrigins []string
}

type FetchConfig struct {
	Timeout       time.Duration
	Retries       uint64
	RetryInterval time.Duration
}

type ReportConfig struct {
	FileName           string
	PaybackPlaceholder string
	Compress           bool
}

type LogConfig struct {
	Level       string
	Development bool
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperAPIURLKey, constants.DefaultAPIURL)
	v.SetDefault(constants.ViperListenAddrKey, constants.DefaultListenAddr)
	v.SetDefault(constants.ViperFetchTimeoutKey, constants.DefaultFetchTimeout)
	v.SetDefault(constants.ViperFetchRetriesKey, constants.DefaultFetchRetries)
	v.SetDefault(constants.ViperFetchRetryIntervalKey, constants.DefaultFetchRetryInterval)
	v.SetDefault(constants.ViperReportFileNameKey, constants.DefaultReportFileName)
	v.SetDefault(constants.ViperReportPlaceholderKey, constants.DefaultPaybackPlaceholder)
	v.SetDefault(constants.ViperReportCompressKey, true)
	v.SetDefault(constants.ViperLogLevelKey, "info")
	v.SetDefault(constants.ViperLogDevelopmentKey, false)
	v.SetDefault(constants.ViperCORSAllowOriginsKey, []string{"*"})
}

// NewViper builds the layered lookup: defaults, then the optional config
// file, then TRIPHORIUM_* environment variables. Flags bound by the caller
// take precedence over all of them.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	if err := v.BindEnv(constants.ViperAPIURLKey, constants.EnvPrefix+"_API_URL", "API_URL"); err != nil {
		return nil, fmt.Errorf("viper.BindEnv: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	return v, nil
}

func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		APIURL:     strings.TrimRight(v.GetString(constants.ViperAPIURLKey), "/"),
		ListenAddr: v.GetString(constants.ViperListenAddrKey),
		Fetch: FetchConfig{
			Timeout:       v.GetDuration(constants.ViperFetchTimeoutKey),
			Retries:       v.GetUint64(constants.ViperFetchRetriesKey),
			RetryInterval: v.GetDuration(constants.ViperFetchRetryIntervalKey),
		},
		Report: ReportConfig{
			FileName:           v.GetString(constants.ViperReportFileNameKey),
			PaybackPlaceholder: v.GetString(constants.ViperReportPlaceholderKey),
			Compress:           v.GetBool(constants.ViperReportCompressKey),
		},
		Log: LogConfig{
			Level:       v.GetString(constants.ViperLogLevelKey),
			Development: v.GetBool(constants.ViperLogDevelopmentKey),
		},
		CORSAllowOrigins: v.GetStringSlice(constants.ViperCORSAllowOriginsKey),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("api_url is empty")
	}
	if _, err := url.ParseRequestURI(c.APIURL); err != nil {
		return fmt.Errorf("api_url: %w", err)
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive, got %s", c.Fetch.Timeout)
	}
	if c.Report.FileName == "" {
		return errors.New("report.file_name is empty")
	}
	return nil
}

// Default is the configuration with no file, env or flag overrides.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	cfg, _ := FromViper(v)
	return cfg
}
