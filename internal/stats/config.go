package stats

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STATS_"

type fileConfig struct {
	Presets  []string  `koanf:"presets"`
	Pairings []Pairing `koanf:"pairings"`
}

// LoadPairings resolves the pairings to run, in order:
//  1. presets named in the YAML file at path (if any) or STATS_PRESETS
//     (comma separated, overrides the file)
//  2. custom pairings listed under "pairings" in the file
//
// With nothing configured it returns DefaultPairings.
func LoadPairings(path string) ([]Pairing, error) {
	k := koanf.New(".")

	if strings.TrimSpace(path) != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("stats config: %w", err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("stats config %s: %w", path, err)
		}
	}

	envProvider := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, any) {
		if key != envPrefix+"PRESETS" {
			return "", nil
		}
		list := splitList(value)
		if len(list) == 0 {
			return "", nil
		}
		return "presets", list
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("stats env: %w", err)
	}

	var fc fileConfig
	if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("stats config: %w", err)
	}

	var out []Pairing
	for _, name := range fc.Presets {
		p, ok := Preset(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidPairing, name)
		}
		out = append(out, p)
	}
	for _, p := range fc.Pairings {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return DefaultPairings(), nil
	}
	return out, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
