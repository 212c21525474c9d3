package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	RunLogName        = "runs.log"
)

type Configuration struct {
	configFs afero.Fs

	// Command is the toolchain invocation, tokenized with shell quoting
	// rules. The payload goes to its standard input.
	Command string `json:"command" validate:"required"`

	// DefaultPayload is sent when no payload is given on the command line.
	DefaultPayload string `json:"default_payload"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// OpenRunLog opens the run log in an append only state.
func (c *Configuration) OpenRunLog() (afero.File, error) {
	return c.fs().OpenFile(RunLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func (c *Configuration) ReadRunLog() (afero.File, error) {
	return c.fs().OpenFile(RunLogName, os.O_RDONLY, 0600)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
