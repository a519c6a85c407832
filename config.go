package interactable

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default timings.
const (
	DefaultClickTime      = time.Second
	DefaultRollOffTime    = 250 * time.Millisecond
	DefaultVoicePulseTime = 300 * time.Millisecond
)

// Config is the element-level configuration consumed by the core.
type Config struct {
	Name string `yaml:"name"`
	// Action is the input action that presses the element. Empty matches
	// every action.
	Action string `yaml:"action"`
	// Global makes the element react to input and voice without focus.
	Global bool `yaml:"global"`
	// VoiceCommand is a comma-separated list of keywords.
	VoiceCommand       string `yaml:"voice_command"`
	VoiceRequiresFocus bool   `yaml:"voice_requires_focus"`

	Dimensions     int  `yaml:"dimensions"`
	StartDimension int  `yaml:"start_dimension"`
	CanSelect      bool `yaml:"can_select"`
	CanDeselect    bool `yaml:"can_deselect"`

	ClickTime      time.Duration `yaml:"click_time"`
	RollOffTime    time.Duration `yaml:"roll_off_time"`
	VoicePulseTime time.Duration `yaml:"voice_pulse_time"`

	// Tracks overrides the PriorityPolicy track list. Empty uses DefaultTracks.
	Tracks []StateName `yaml:"tracks"`
}

// DefaultConfig returns a one-dimension button with default timings.
func DefaultConfig() Config {
	return Config{
		Dimensions:     1,
		CanSelect:      true,
		CanDeselect:    true,
		ClickTime:      DefaultClickTime,
		RollOffTime:    DefaultRollOffTime,
		VoicePulseTime: DefaultVoicePulseTime,
	}
}

// UnmarshalYAML decodes on top of DefaultConfig so omitted keys keep their
// defaults.
func (c *Config) UnmarshalYAML(n *yaml.Node) error {
	type plain Config
	p := plain(DefaultConfig())
	if err := n.Decode(&p); err != nil {
		return err
	}
	*c = Config(p)
	return nil
}

// Validate checks the configuration for values the core cannot run with.
func (c Config) Validate() error {
	const op = "Config.Validate"
	if c.Dimensions <= 0 {
		return invalidArgument(op, "%s: dimensions %d must be positive", c.label(), c.Dimensions)
	}
	if c.StartDimension < 0 || c.StartDimension >= c.Dimensions {
		return invalidArgument(op, "%s: start_dimension %d outside [0, %d)", c.label(), c.StartDimension, c.Dimensions)
	}
	if c.ClickTime <= 0 || c.RollOffTime <= 0 || c.VoicePulseTime <= 0 {
		return invalidArgument(op, "%s: durations must be positive", c.label())
	}
	for _, t := range c.Tracks {
		if t == StateDefault || t >= stateCount {
			return invalidArgument(op, "%s: invalid track %s", c.label(), t)
		}
	}
	return nil
}

// Keywords splits VoiceCommand into trimmed, non-empty keywords.
func (c Config) Keywords() []string {
	if c.VoiceCommand == "" {
		return nil
	}
	parts := strings.Split(c.VoiceCommand, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) label() string {
	if c.Name == "" {
		return "<unnamed>"
	}
	return c.Name
}

type configFile struct {
	Buttons []Config `yaml:"buttons"`
}

// ParseConfigs decodes a YAML document with a top-level "buttons" list and
// validates every entry.
func ParseConfigs(data []byte) ([]Config, error) {
	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, newError("ParseConfigs", KindConfig, err)
	}
	for _, c := range f.Buttons {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Buttons, nil
}

// LoadConfigs reads and parses a YAML configuration file.
func LoadConfigs(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError("LoadConfigs", KindConfig, fmt.Errorf("read %s: %w", path, err))
	}
	return ParseConfigs(data)
}
