package config

import (
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/skillsenselab/refgroup/errors"
	"github.com/skillsenselab/refgroup/logger"
	"github.com/skillsenselab/refgroup/registry"
)

// GroupDefinition describes one group's bindings.
type GroupDefinition struct {
	// Refs binds names directly to configured values.
	Refs map[string]any `yaml:"refs" mapstructure:"refs"`
	// Modules lists module names to bind via LazyAddRef.
	Modules []string `yaml:"modules" mapstructure:"modules" validate:"dive,required"`
}

// Definition is the root of a group definition file.
type Definition struct {
	Groups map[string]GroupDefinition `yaml:"groups" mapstructure:"groups" validate:"required,min=1,dive"`
}

// LoaderConfig holds optional loader settings.
type LoaderConfig struct {
	EnvFile   string
	EnvPrefix string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithEnvFile loads the given .env file before reading configuration.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix overrides the environment variable prefix (default REFGROUP).
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// Load reads, unmarshals, and validates a group definition file.
func Load(path string, opts ...LoaderOption) (*Definition, error) {
	lc := LoaderConfig{EnvPrefix: "REFGROUP"}
	for _, opt := range opts {
		opt(&lc)
	}

	log := logger.WithComponent("config")

	if lc.EnvFile != "" {
		if _, err := os.Stat(lc.EnvFile); err == nil {
			if err := godotenv.Load(lc.EnvFile); err != nil {
				log.Warn("failed to load .env file", logger.ErrorFields("load_env", err))
			}
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(lc.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.InvalidConfig("reading " + path).WithCause(err)
	}

	var def Definition
	if err := v.Unmarshal(&def); err != nil {
		return nil, errors.InvalidConfig("unmarshaling " + path).WithCause(err)
	}

	if err := validator.New().Struct(&def); err != nil {
		return nil, errors.InvalidConfig("validating " + path).WithCause(err)
	}

	log.Info("group definitions loaded", logger.Fields(
		"file", path,
		"groups", len(def.Groups),
	))
	return &def, nil
}

// Apply builds every defined group into the registry. Direct refs are bound
// before modules; groups are applied in sorted order so failures are
// deterministic. The first binding failure aborts the apply.
func (d *Definition) Apply(reg *registry.Registry) error {
	groups := make([]string, 0, len(d.Groups))
	for g := range d.Groups {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, group := range groups {
		def := d.Groups[group]
		b := reg.Builder(group)

		names := make([]string, 0, len(def.Refs))
		for name := range def.Refs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.AddNamedRef(name, def.Refs[name])
		}

		for _, module := range def.Modules {
			b.LazyAddRef(module)
		}

		if err := b.Err(); err != nil {
			return errors.InvalidConfig("building group "+group).WithCause(err)
		}
	}
	return nil
}
