/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jumboframes/frequency/emitter"
	"github.com/jumboframes/frequency/tokenizer"
)

// EnvConfigFile names the environment variable holding the config path.
const EnvConfigFile = "FREQUENCY_CONFIG"

var (
	ErrSeparator = errors.New("invalid separator")
	ErrEncoding  = errors.New("invalid encoding")
	ErrMaxNodes  = errors.New("invalid max_nodes")
	ErrUndecoded = errors.New("unknown keys")
)

type Config struct {
	Separator string
	Encoding  string
	MaxNodes  int
	Log       struct {
		Verbosity int
	}
}

func Default() *Config {
	return &Config{
		Separator: emitter.DefaultSeparator,
	}
}

// FromEnv loads the file named by EnvConfigFile, or the defaults when the
// variable is unset or empty.
func FromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigFile)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func Load(fpath string) (*Config, error) {
	type conf struct {
		Separator *separator `toml:"separator"`
		Encoding  encoding   `toml:"encoding"`
		MaxNodes  maxNodes   `toml:"max_nodes"`
		Log       struct {
			Verbosity int `toml:"verbosity"`
		} `toml:"log"`
	}
	var cf conf
	md, err := toml.DecodeFile(fpath, &cf)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fpath, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("read %s: %w: %s", fpath, ErrUndecoded, strings.Join(keys, ", "))
	}

	cfg := Default()
	if cf.Separator != nil {
		cfg.Separator = string(*cf.Separator)
	}
	cfg.Encoding = string(cf.Encoding)
	cfg.MaxNodes = int(cf.MaxNodes)
	cfg.Log.Verbosity = cf.Log.Verbosity
	return cfg, nil
}

type separator string
type encoding string
type maxNodes int

func (s *separator) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return fmt.Errorf("%w: empty", ErrSeparator)
	}
	for _, c := range text {
		if c == '\n' {
			return fmt.Errorf("%w: contains newline", ErrSeparator)
		}
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			return fmt.Errorf("%w: contains letter %q", ErrSeparator, c)
		}
	}
	*s = separator(text)
	return nil
}

func (e *encoding) UnmarshalText(text []byte) error {
	name := string(text)
	if !tokenizer.ValidEncoding(name) {
		return fmt.Errorf("%w: %q", ErrEncoding, name)
	}
	*e = encoding(name)
	return nil
}

func (m *maxNodes) UnmarshalTOML(value interface{}) error {
	n, ok := value.(int64)
	if !ok || n < 0 {
		return fmt.Errorf("%w: %v", ErrMaxNodes, value)
	}
	*m = maxNodes(n)
	return nil
}
