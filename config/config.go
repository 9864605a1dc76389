// Package config contains structures for parsing list backend configurations.
package config

import (
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/slist/pkg/list"
)

// ListConfig represents a parsed list configuration file:
//
//	backend   = "fixed"  # node | array | fixed
//	capacity  = 1000
//	overflow  = "drop"   # drop | panic
//	log_level = "debug"
type ListConfig struct {
	Backend  string `toml:"backend"`
	Capacity int    `toml:"capacity"`
	Overflow string `toml:"overflow"`
	LogLevel string `toml:"log_level"`
}

// ParseListConfig decodes a TOML document into a ListConfig. Keys that do not
// belong to ListConfig are an error.
func ParseListConfig(b []byte) (*ListConfig, error) {
	var c ListConfig
	md, err := toml.Decode(string(b), &c)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode list config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown list config keys %v", undecoded)
	}
	return &c, nil
}

// LoadListConfigFromFile reads and parses the file at path.
func LoadListConfigFromFile(path string) (*ListConfig, error) {
	b, err := fs.ReadFile(fileSystem, path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read list config %q", path)
	}
	c, err := ParseListConfig(b)
	if err != nil {
		return nil, errors.Wrapf(err, "in %q", path)
	}
	return c, nil
}

// Options converts the configuration into list.Options. The backend name and
// capacity are validated later by list.Make.
func (c *ListConfig) Options() (list.Options, error) {
	overflow, err := list.ParseOverflow(c.Overflow)
	if err != nil {
		return list.Options{}, err
	}

	backend := c.Backend
	if backend == "" {
		backend = list.BackendNode
	}

	log := logrus.WithField("list", backend)
	if c.LogLevel != "" {
		level, err := logrus.ParseLevel(c.LogLevel)
		if err != nil {
			return list.Options{}, errors.Wrap(err, "invalid log_level")
		}
		logger := logrus.New()
		logger.SetLevel(level)
		log = logrus.NewEntry(logger).WithField("list", backend)
	}

	log.WithFields(logrus.Fields{
		"capacity": c.Capacity,
		"overflow": overflow,
	}).Debug("loaded list config")

	return list.Options{
		Backend:  backend,
		Capacity: c.Capacity,
		Overflow: overflow,
		Log:      log,
	}, nil
}

// MakeList builds an empty list from the configuration file at path.
func MakeList[T any](path string) (list.Forward[T], error) {
	c, err := LoadListConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return list.Make[T](opts)
}
