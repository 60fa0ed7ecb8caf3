// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/dalzilio/robdd"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type File struct {
	Manager Config `yaml:"manager"`
}

// Config lists the parameters of the BDD manager; a zero value keeps the
// default of the library.
type Config struct {
	Nodesize        int `yaml:"nodesize"`
	Maxnodesize     int `yaml:"maxnodesize"`
	Maxnodeincrease int `yaml:"maxnodeincrease"`
	Minfreenodes    int `yaml:"minfreenodes"`
	Cachesize       int `yaml:"cachesize"`
	Cacheratio      int `yaml:"cacheratio"`
}

// LoadConfig reads the configuration in file cfgPath. An empty path gives the
// default configuration.
func LoadConfig(cfgPath string) (*Config, error) {
	if cfgPath == "" {
		return &Config{}, nil
	}
	d, err := os.ReadFile(os.ExpandEnv(cfgPath))
	if err != nil {
		return nil, errors.Wrap(err, "reading configuration")
	}

	var cfgFile File
	if err := yaml.UnmarshalStrict(d, &cfgFile); err != nil {
		return nil, errors.Wrapf(err, "parsing configuration %s", cfgPath)
	}

	config := &cfgFile.Manager
	for name, v := range map[string]int{
		"nodesize":        config.Nodesize,
		"maxnodesize":     config.Maxnodesize,
		"maxnodeincrease": config.Maxnodeincrease,
		"minfreenodes":    config.Minfreenodes,
		"cachesize":       config.Cachesize,
		"cacheratio":      config.Cacheratio,
	} {
		if v < 0 {
			return nil, errors.Errorf("negative value for %s (%d) in %s", name, v, cfgPath)
		}
	}
	if config.Minfreenodes > 100 {
		return nil, errors.Errorf("minfreenodes is a percentage, got %d", config.Minfreenodes)
	}
	return config, nil
}

// Options returns the options of robdd.New matching c. The manager logs with
// the standard logger, so that --debug also shows sweeps and resizes.
func (c *Config) Options() []robdd.Option {
	opts := []robdd.Option{robdd.Logger(log.StandardLogger())}
	if c.Nodesize > 0 {
		opts = append(opts, robdd.Nodesize(c.Nodesize))
	}
	if c.Maxnodesize > 0 {
		opts = append(opts, robdd.Maxnodesize(c.Maxnodesize))
	}
	if c.Maxnodeincrease > 0 {
		opts = append(opts, robdd.Maxnodeincrease(c.Maxnodeincrease))
	}
	if c.Minfreenodes > 0 {
		opts = append(opts, robdd.Minfreenodes(c.Minfreenodes))
	}
	if c.Cachesize > 0 {
		opts = append(opts, robdd.Cachesize(c.Cachesize))
	}
	if c.Cacheratio > 0 {
		opts = append(opts, robdd.Cacheratio(c.Cacheratio))
	}
	return opts
}

// newManager returns a manager with varnum variables configured from the file
// given with --config.
func newManager(varnum int) (*robdd.Manager, error) {
	config, err := LoadConfig(configArgs)
	if err != nil {
		return nil, err
	}
	return robdd.New(varnum, config.Options()...)
}

// quit tears down m, reporting leaked references as a warning.
func quit(m *robdd.Manager) {
	if err := m.Quit(); err != nil {
		log.WithError(err).Warn("BDD manager torn down")
	}
}

func outputPath(name string) string {
	return filepath.Join(outputDirArgs, name)
}

// writeFile creates file path and fills it with dump.
func writeFile(path string, dump func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()
	log.Debugf("writing %s", path)
	return errors.Wrapf(dump(f), "writing %s", path)
}
