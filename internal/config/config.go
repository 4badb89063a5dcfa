package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level configuration shared by the bridge host and the controlling process.
type Config struct {
	Log       Log       `json:"log" yaml:"log"`
	Bridge    Bridge    `json:"bridge" yaml:"bridge"`
	Resources Resources `json:"resources" yaml:"resources"`
	Layout    Layout    `json:"layout" yaml:"layout"`
	Snapshots Snapshots `json:"snapshots" yaml:"snapshots"`
}

type Log struct {
	Level string `json:"level" yaml:"level"`
}

// Bridge configures the websocket link between the controlling process and the simulation host.
type Bridge struct {
	URL          string        `json:"url" yaml:"url"`
	Listen       string        `json:"listen" yaml:"listen"`
	Path         string        `json:"path" yaml:"path"`
	CallTimeout  time.Duration `json:"call_timeout" yaml:"call_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
	MaxFrameSize int64         `json:"max_frame_size" yaml:"max_frame_size"`
}

// Resources configures streamed-resource waits.
type Resources struct {
	LoadTimeout time.Duration `json:"load_timeout" yaml:"load_timeout"`
	TickRate    time.Duration `json:"tick_rate" yaml:"tick_rate"`
}

// Layout points at an actor record layout file. An empty path selects the built-in layout.
type Layout struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

type Snapshots struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: Log{Level: "info"},
		Bridge: Bridge{
			URL:          "ws://127.0.0.1:7788/bridge",
			Listen:       "127.0.0.1:7788",
			Path:         "/bridge",
			CallTimeout:  250 * time.Millisecond,
			WriteTimeout: time.Second,
			MaxFrameSize: 1 << 20,
		},
		Resources: Resources{
			LoadTimeout: time.Second,
			TickRate:    16 * time.Millisecond,
		},
	}
}

// Load decodes YAML on top of Default and validates the result.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a YAML config file. An empty path yields Default.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Load(bytes.NewReader(data))
}

func (c *Config) Validate() error {
	if c.Bridge.CallTimeout <= 0 {
		return fmt.Errorf("%w: bridge.call_timeout must be positive", ErrInvalidConfig)
	}
	if c.Bridge.Path == "" || c.Bridge.Path[0] != '/' {
		return fmt.Errorf("%w: bridge.path must start with /", ErrInvalidConfig)
	}
	if c.Bridge.MaxFrameSize <= 0 {
		return fmt.Errorf("%w: bridge.max_frame_size must be positive", ErrInvalidConfig)
	}
	if c.Resources.LoadTimeout <= 0 {
		return fmt.Errorf("%w: resources.load_timeout must be positive", ErrInvalidConfig)
	}
	if c.Resources.TickRate <= 0 {
		return fmt.Errorf("%w: resources.tick_rate must be positive", ErrInvalidConfig)
	}
	return nil
}
