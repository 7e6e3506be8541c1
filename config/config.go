package config

type Config struct {
	Listen      string             `yaml:"listen"`
	ProbePath   string             `yaml:"probe_path"`
	JSONPath    string             `yaml:"json_path"`
	MetricsPath string             `yaml:"metrics_path"`
	Timeout     float64            `yaml:"timeout"`
	Targets     map[string]*Target `yaml:"targets"`
	Global      Global             `yaml:"global"`
}

func DefaultConfig() Config {
	return Config{
		Listen:      ":9778",
		ProbePath:   "/probe",
		JSONPath:    "/json",
		MetricsPath: "/metrics",
		Timeout:     60,
		Global: Global{
			Options: DefaultOptions(),
		},
	}
}

func DefaultOptions() Options {
	return Options{
		ExportDevices: true,
		ExportFields:  true,
		IncludeHidden: true,
	}
}

func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	*c = DefaultConfig()

	type plain Config
	if err := unmarshal((*plain)(c)); err != nil {
		return err
	}

	for _, target := range c.Targets {
		// empty entries are reported by Validate
		if target == nil {
			continue
		}
		if target.Options == nil {
			target.Options = &c.Global.Options
		}
	}

	return nil
}

type Global struct {
	Options Options `yaml:"options"`
}

type Options struct {
	ExportDevices bool `yaml:"export_devices"`
	ExportFields  bool `yaml:"export_fields"`
	IncludeHidden bool `yaml:"include_hidden"`
}

func (o *Options) UnmarshalYAML(unmarshal func(interface{}) error) error {
	*o = DefaultOptions()

	type plain Options
	if err := unmarshal((*plain)(o)); err != nil {
		return err
	}

	return nil
}

// Target names where the two admin pages of one router are read from,
// a file path or an http(s) URL each.
type Target struct {
	DeviceInformation string   `yaml:"device_information"`
	DeviceManagement  string   `yaml:"device_management"`
	Options           *Options `yaml:"options"`
}
