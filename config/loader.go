package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	configReloadSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "huawei_exporter",
		Name:      "config_last_reload_successful",
		Help:      "Huawei exporter config loaded successfully.",
	})

	configReloadSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "huawei_exporter",
		Name:      "config_last_reload_success_timestamp_seconds",
		Help:      "Timestamp of the last successful configuration reload.",
	})
)

func init() {
	prometheus.MustRegister(configReloadSuccess)
	prometheus.MustRegister(configReloadSeconds)
}

type SafeConfig struct {
	sync.RWMutex
	configFile string
	c          *Config
}

func (sc *SafeConfig) Get() *Config {
	sc.RLock()
	defer sc.RUnlock()
	return sc.c
}

func New(configFile string) *SafeConfig {
	c := DefaultConfig()
	return &SafeConfig{
		c:          &c,
		configFile: configFile,
	}
}

func (sc *SafeConfig) LoadConfig() (err error) {
	c := &Config{}
	defer func() {
		if err != nil {
			configReloadSuccess.Set(0)
		} else {
			configReloadSuccess.Set(1)
			configReloadSeconds.SetToCurrentTime()
		}
	}()

	yamlReader, err := os.Open(sc.configFile)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	defer yamlReader.Close()
	decoder := yaml.NewDecoder(yamlReader, yaml.DisallowUnknownField())

	err = decoder.Decode(c)
	if err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	err = c.Validate()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	sc.Lock()
	defer sc.Unlock()
	sc.c = c

	return nil
}

func (c *Config) Validate() error {
	var errs []error
	for name, target := range c.Targets {
		if target == nil {
			errs = append(errs, fmt.Errorf("target %s: empty", name))
			continue
		}
		if target.DeviceInformation == "" {
			errs = append(errs, fmt.Errorf("target %s: device_information missing", name))
		}
		if target.DeviceManagement == "" {
			errs = append(errs, fmt.Errorf("target %s: device_management missing", name))
		}
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}
	return errors.Join(errs...)
}
