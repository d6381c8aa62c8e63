package logger

import (
	"strings"
)

// Config provides a logging Level for a particular namespace.
type Config interface {
	LevelForNamespace(namespace string) Level
}

// ConfigMap maps namespaces to levels. The empty namespace configures the
// root logger.
type ConfigMap map[string]Level

// NewConfigFromString parses a comma separated list of namespace:level pairs,
// for example "registry:trace,signaling,:warn". A namespace without a level
// is enabled at LevelInfo. An empty string returns a nil Config.
func NewConfigFromString(stringConfig string) Config {
	if stringConfig == "" {
		return nil
	}

	entries := strings.Split(stringConfig, ",")

	ret := make(ConfigMap, len(entries))

	for _, ns := range entries {
		level := LevelInfo

		if index := strings.LastIndex(ns, ":"); index > -1 {
			if cfgLevel, ok := LevelFromString(ns[index+1:]); ok {
				level = cfgLevel
				ns = ns[:index]
			}
		}

		ret[ns] = level
	}

	return ret
}

// LevelForNamespace implements Config. The full namespace is matched first,
// then its last section, and finally the root logger level.
func (c ConfigMap) LevelForNamespace(namespace string) Level {
	if level, ok := c[namespace]; ok {
		return level
	}

	if index := strings.LastIndex(namespace, ":"); index > -1 {
		if level, ok := c[namespace[index+1:]]; ok {
			return level
		}
	}

	return c[""]
}
