package config

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/rainkit/iterpar/errors"
	"github.com/rainkit/iterpar/internal"
	"github.com/rainkit/iterpar/logger"
)

// Config holds the module-wide settings.
type Config struct {
	// Workers is the worker count callers pass to the parallel operations
	// when they have no better estimate.
	Workers int           `yaml:"workers" mapstructure:"workers" validate:"gte=1"`
	Logger  logger.Config `yaml:"logger" mapstructure:"logger"`
}

// Default returns a configuration with all defaults applied.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// ApplyDefaults applies default values to unset fields.
func (c *Config) ApplyDefaults() {
	if c.Workers == 0 {
		c.Workers = internal.DefaultWorkers()
	}
	c.Logger.ApplyDefaults()
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.InvalidArgument("config", err.Error()).WithCause(err)
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.InvalidArgument("config", strings.Join(messages, "; ")).WithCause(err)
}

// NewLogger builds the logger described by the configuration.
func (c *Config) NewLogger(serviceName string) *logger.Logger {
	cfg := c.Logger
	cfg.ApplyDefaults()
	return logger.New(&cfg, serviceName)
}
