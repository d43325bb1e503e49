package config

import "sort"

var Presets = map[string]*Config{
	"growth": {
		K: 0.1, X0: 0, Y0: 1.0, XFinal: 5.0, H: 0.1,
	},
	"fast-growth": {
		K: 0.5, X0: 0, Y0: 1.0, XFinal: 5.0, H: 0.05,
	},
	"decay": {
		K: -1.0, X0: 0, Y0: 1.0, XFinal: 1.0, H: 0.1,
	},
	"slow-decay": {
		K: -0.2, X0: 0, Y0: 10.0, XFinal: 10.0, H: 0.1,
	},
	"flat": {
		K: 0.0, X0: 0, Y0: 1.0, XFinal: 5.0, H: 0.5,
	},
	"coarse": {
		K: 0.1, X0: 0, Y0: 1.0, XFinal: 1.0, H: 0.5,
	},
	"fine": {
		K: 0.1, X0: 0, Y0: 1.0, XFinal: 5.0, H: 0.001,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
