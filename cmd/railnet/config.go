package main

import (
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/railnet/network"
	"github.com/pkg/errors"
)

// Config is the optional TOML configuration file:
//
//	network = "swiss.txt"   # resolved relative to this file
//	mst = "kruskal"
//
//	[costs]                 # renovation cost per km, by track count
//	1 = 3
//	2 = 6
type Config struct {
	Network string             `toml:"network"`
	MST     string             `toml:"mst"`
	Costs   map[string]float64 `toml:"costs"`
}

// loadConfig decodes path. An empty path yields an empty Config.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode TOML config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}

	return cfg, nil
}

// RenovationCosts converts the [costs] table. Nil when the table is absent.
func (c *Config) RenovationCosts() (network.RenovationCosts, error) {
	if len(c.Costs) == 0 {
		return nil, nil
	}
	out := make(network.RenovationCosts, len(c.Costs))
	for k, v := range c.Costs {
		tracks, err := strconv.Atoi(k)
		if err != nil || tracks < 1 {
			return nil, errors.Errorf("costs: key %q is not a track count", k)
		}
		if v < 0 {
			return nil, errors.Errorf("costs: negative cost %g for %d tracks", v, tracks)
		}
		out[tracks] = v
	}

	return out, nil
}
