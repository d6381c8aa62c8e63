package config

import (
	"io"
	"os"
	"strconv"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of environment variables overriding file config.
const EnvPrefix = "TRACKPUB_"

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Replay ReplayConfig `yaml:"replay"`
}

type LogConfig struct {
	// Levels uses the logger config format, e.g. "registry:trace,:info".
	Levels string `yaml:"levels"`
}

type ReplayConfig struct {
	// File is the default events file when none is given on the command line.
	File string `yaml:"file"`
	// Strict aborts the replay on the first invalid descriptor.
	Strict bool `yaml:"strict"`
}

// DefaultLogLevels enables info logs for all namespaces.
const DefaultLogLevels = ":info"

func InitConfig(c *Config) {
	c.Log.Levels = DefaultLogLevels
}

// ReadConfig applies defaults, then each file in order, then the environment.
func ReadConfig(filenames []string) (c Config, err error) {
	InitConfig(&c)

	err = ReadConfigFiles(filenames, &c)

	ReadConfigFromEnv(EnvPrefix, &c)

	return c, errors.Trace(err)
}

func ReadConfigFiles(filenames []string, c *Config) error {
	for _, filename := range filenames {
		if err := ReadConfigFile(filename, c); err != nil {
			return errors.Trace(err)
		}
	}

	return nil
}

func ReadConfigFile(filename string, c *Config) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Annotatef(err, "read config file: %s", filename)
	}

	defer f.Close()

	err = ReadConfigYAML(f, c)

	return errors.Annotatef(err, "read yaml config: %s", filename)
}

func ReadConfigYAML(reader io.Reader, c *Config) error {
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(c); err != nil && errors.Cause(err) != io.EOF {
		return errors.Annotatef(err, "decode yaml")
	}

	return nil
}

func ReadConfigFromEnv(prefix string, c *Config) {
	setEnvString(&c.Log.Levels, prefix+"LOG_LEVELS")
	setEnvString(&c.Replay.File, prefix+"REPLAY_FILE")
	setEnvBool(&c.Replay.Strict, prefix+"REPLAY_STRICT")
}

func setEnvString(dest *string, name string) {
	if value := os.Getenv(name); value != "" {
		*dest = value
	}
}

// setEnvBool only overrides dest when the variable parses as a boolean.
func setEnvBool(dest *bool, name string) {
	if value, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		*dest = value
	}
}
