// Package config holds the immutable configuration shared by the playground,
// the robot session and the terminal UI.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Playground describes the rectangle of legal coordinates.
type Playground struct {
	StartX  int `yaml:"start_x"`
	StartY  int `yaml:"start_y"`
	LengthX int `yaml:"length_x"`
	LengthY int `yaml:"length_y"`
}

// UI holds terminal UI options.
type UI struct {
	RobotColor string `yaml:"robot_color"` // Hex colour for the robot glyph (e.g., "#FFFF00")
}

// Config is the full configuration. It is built once and passed by value.
type Config struct {
	Playground Playground `yaml:"playground"`
	UI         UI         `yaml:"ui"`
}

// Default returns the stock 6x6 playground anchored at the origin.
func Default() Config {
	return Config{
		Playground: Playground{
			StartX:  0,
			StartY:  0,
			LengthX: 6,
			LengthY: 6,
		},
		UI: UI{
			RobotColor: "#FFFF00",
		},
	}
}

//go:embed config.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("config.schema.json", schemaJSON)

// Load reads a YAML file and applies it on top of Default.
// Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(string(raw)) == "" {
		return cfg, nil
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validate(doc); err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// validate checks a decoded YAML document against the embedded schema.
// The document is round-tripped through JSON so the validator sees plain JSON types.
func validate(doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not representable as JSON: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
