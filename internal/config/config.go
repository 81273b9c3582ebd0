package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	defaultAccountCacheTTL = 10 * time.Minute
	defaultViewCacheSize   = 1000
	defaultHTTPTimeout     = 15 * time.Second
	defaultAddress         = ":8080"
)

type Config struct {
	Address         string        `mapstructure:"address"`
	Instance        string        `mapstructure:"-"`
	Origin          string        `mapstructure:"origin"`
	Token           string        `mapstructure:"token"`
	LogLevel        logrus.Level  `mapstructure:"-"`
	RedisAddress    string        `mapstructure:"redis_address"`
	AccountCacheTTL time.Duration `mapstructure:"-"`
	ViewCacheSize   int           `mapstructure:"view_cache_size"`
	HTTPTimeout     time.Duration `mapstructure:"-"`
	Standalone      bool          `mapstructure:"standalone"`
	SentryDSN       string        `mapstructure:"sentry_dsn"`
}

type Loader interface {
	Load() error
	Get() Config
}

type configLoader struct {
	conf Config
}

func NewLoader() *configLoader {
	return &configLoader{}
}

func (l *configLoader) Get() Config {
	return l.conf
}

func (l *configLoader) Load() error {
	conf := &Config{}

	viper.SetEnvPrefix("fediprofile")
	viper.AutomaticEnv()

	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.SetConfigFile(".env")
	err := viper.ReadInConfig()
	if err != nil && os.Getenv("TEST") != "true" {
		return errors.New("unable to read default config from .env")
	}
	viper.SetConfigFile(".env.local")
	_ = viper.MergeInConfig()

	err = viper.Unmarshal(conf)
	if err != nil {
		return errors.Wrap(err, "unable to deserialize configuration")
	}

	conf.Instance, err = ParseInstance(viper.GetString("instance"))
	if err != nil {
		return err
	}

	if conf.Origin == "" {
		conf.Origin = "https://" + conf.Instance
	}

	logLevel := viper.GetString("log_level")
	if logLevel == "" {
		return errors.New("You must define a log level")
	}
	conf.LogLevel, err = logrus.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "unable to parse log level")
	}

	conf.AccountCacheTTL = defaultAccountCacheTTL
	if accountCacheTTL := viper.GetString("account_cache_ttl"); accountCacheTTL != "" {
		conf.AccountCacheTTL, err = time.ParseDuration(accountCacheTTL)
		if err != nil {
			return errors.Wrap(err, "unable to parse account cache ttl duration")
		}
	}

	conf.HTTPTimeout = defaultHTTPTimeout
	if httpTimeout := viper.GetString("http_timeout"); httpTimeout != "" {
		conf.HTTPTimeout, err = time.ParseDuration(httpTimeout)
		if err != nil {
			return errors.Wrap(err, "unable to parse http timeout duration")
		}
	}

	if conf.Address == "" {
		conf.Address = defaultAddress
	}
	if conf.ViewCacheSize <= 0 {
		conf.ViewCacheSize = defaultViewCacheSize
	}

	l.conf = *conf
	return nil
}

// ParseInstance accepts either a bare host ("mastodon.social") or an URL and returns the host.
func ParseInstance(instance string) (string, error) {
	if instance == "" {
		return "", errors.New("You must define an instance")
	}
	if !strings.Contains(instance, "://") {
		instance = "https://" + instance
	}
	instanceURL, err := url.Parse(instance)
	if err != nil {
		return "", errors.Wrap(err, "unable to parse instance")
	}
	if instanceURL.Host == "" {
		return "", errors.Errorf("invalid instance %q", instance)
	}
	return strings.ToLower(instanceURL.Host), nil
}
