// Package config loads interpreter settings from a YAML file.
package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/bfi/machine"
)

// Config is the on-disk form of the interpreter settings.
// Unset keys keep their defaults.
type Config struct {
	TapeSize int    `yaml:"tape_size"`
	Policy   string `yaml:"policy"`
	Flush    bool   `yaml:"flush"`
	Verbose  bool   `yaml:"verbose"`
}

// Default returns the settings of a classic 30000 cell machine with
// flushed output.
func Default() (cfg *Config) {
	mc := machine.DefaultConfig()

	cfg = &Config{
		TapeSize: mc.TapeSize,
		Policy:   mc.Policy.String(),
		Flush:    true,
	}

	return
}

// Decode reads settings over the defaults. An empty document is not an
// error.
func Decode(input io.Reader) (cfg *Config, err error) {
	cfg = Default()

	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)
	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		cfg = nil
		return
	}

	_, err = cfg.Machine()
	if err != nil {
		cfg = nil
		return
	}

	return
}

// Load reads settings from a file.
func Load(path string) (cfg *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Decode(inf)
}

// Machine returns the validated machine configuration.
func (cfg *Config) Machine() (mc machine.Config, err error) {
	policy, err := machine.ParsePolicy(cfg.Policy)
	if err != nil {
		return
	}

	mc = machine.Config{
		TapeSize: cfg.TapeSize,
		Policy:   policy,
	}

	err = mc.Validate()
	return
}
