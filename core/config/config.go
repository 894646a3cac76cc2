package config

import (
	_ "embed"
	"os"
	"path/filepath"
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

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs         afero.Fs
	configurationDir string

	Prompt      string `json:"prompt" validate:"required"`
	Color       string `json:"color" validate:"required,oneof=always auto never"`
	HistoryFile string `json:"history_file"`
	EventLog    string `json:"event_log"`
	Path        string `json:"path"`
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
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// resolve makes relative paths relative to the configuration directory.
func (c *Configuration) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.configurationDir == "" {
		return path
	}
	return filepath.Join(c.configurationDir, path)
}

// HistoryPath returns the readline history file or "" if history is off.
func (c *Configuration) HistoryPath() string {
	return c.resolve(c.HistoryFile)
}

// EventLogPath returns the event log file or "" if the log is off.
func (c *Configuration) EventLogPath() string {
	return c.resolve(c.EventLog)
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.EventLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.EventLogPath(), os.O_RDONLY, 0600)
}

// Default returns the built-in configuration with history and the event log
// turned off, there's no configuration directory to keep them in.
func Default() *Configuration {
	out := defaultConfig()
	out.configFs = afero.NewOsFs()
	out.HistoryFile = ""
	out.EventLog = ""
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
