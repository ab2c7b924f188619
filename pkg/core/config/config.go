// ============================================================================
// Tiny-Interpreter - Kaleidoscope front end
// ============================================================================
//
// Package:     config
// Description: Typed application configuration (tiny.toml / tiny.yaml)
// Author:      Survive2
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	fconfig "github.com/Survive2/Tiny-Interpreter/foundation/core/config"
	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
	tinylog "github.com/Survive2/Tiny-Interpreter/foundation/core/log"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/parser"
	"github.com/Survive2/Tiny-Interpreter/foundation/utils/mapx"
)

// EnvPrefix prefixes environment overrides, e.g. TINY_LOG_LEVEL
const EnvPrefix = "TINY"

// EnvConfigPath names the variable read by LoadFromEnv
const EnvConfigPath = "TINY_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Log        LogConfig      `toml:"log" yaml:"log"`
	REPL       REPLConfig     `toml:"repl" yaml:"repl"`
	Lexer      LexerConfig    `toml:"lexer" yaml:"lexer"`
	Precedence map[string]int `toml:"precedence" yaml:"precedence"`

	path string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// REPLConfig holds settings for the interactive loop
type REPLConfig struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
	Quiet  bool   `toml:"quiet" yaml:"quiet"`
}

// LexerConfig holds lexer settings
type LexerConfig struct {
	NumberPolicy string `toml:"number_policy" yaml:"number_policy"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. Values may be
// overridden by TINY_SECTION_KEY environment variables.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	doc, err := fconfig.LoadWithOptions(path, fconfig.LoadOptions{
		Format:    fconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		return nil, err
	}

	cfg, err := FromDocument(doc)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// LoadFromEnv loads the file named by TINY_CONFIG. Without it, tiny.toml,
// tiny.yaml or tiny.yml is searched in the working directory and the user
// config directory; when nothing is found the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	doc, err := fconfig.Discover(fconfig.DefaultDiscoveryOptions())
	if err != nil {
		return nil, err
	}
	cfg, err := FromDocument(doc)
	if err != nil {
		return nil, err
	}
	cfg.path = doc.FilePath()
	return cfg, nil
}

// FromDocument builds the typed configuration from a loaded document.
// Missing keys keep their defaults.
func FromDocument(doc *fconfig.Config) (*Config, error) {
	cfg := Default()

	cfg.Log.Level = doc.GetString("log.level", cfg.Log.Level)
	cfg.Log.Format = doc.GetString("log.format", cfg.Log.Format)
	cfg.REPL.Prompt = doc.GetString("repl.prompt", cfg.REPL.Prompt)
	cfg.REPL.Quiet = doc.GetBool("repl.quiet", cfg.REPL.Quiet)
	cfg.Lexer.NumberPolicy = doc.GetString("lexer.number_policy", cfg.Lexer.NumberPolicy)

	table := doc.GetMap("precedence")
	if table == nil && doc.Has("precedence") {
		return nil, tinyerror.New("precedence must be a table of operator = integer").
			WithCode(tinyerror.CodeInvalidConfig).
			WithOperation("config.FromDocument")
	}
	for _, op := range doc.Keys("precedence") {
		raw := table[op]
		value, ok := fconfig.ToInt(raw)
		if !ok {
			return nil, tinyerror.Newf("precedence of %q must be an integer", op).
				WithCode(tinyerror.CodeInvalidConfig).
				WithOperation("config.FromDocument").
				WithDetail("operator", op).
				WithDetail("value", fmt.Sprintf("%v", raw))
		}
		if cfg.Precedence == nil {
			cfg.Precedence = make(map[string]int)
		}
		cfg.Precedence[op] = value
	}

	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "ready> "
	}
	if c.Lexer.NumberPolicy == "" {
		c.Lexer.NumberPolicy = parser.NumberStrict.String()
	}
}

// Path returns the file the configuration was loaded from, or ""
func (c *Config) Path() string {
	return c.path
}

// Validate checks every setting and returns the first problem found
func (c *Config) Validate() error {
	if _, err := tinylog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, err)
	}
	if _, err := tinylog.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, err)
	}
	if _, err := parser.ParseNumberPolicy(c.Lexer.NumberPolicy); err != nil {
		return invalid("lexer.number_policy", c.Lexer.NumberPolicy, err)
	}
	for _, op := range mapx.SortedKeys(c.Precedence) {
		if err := validateOperator(op, c.Precedence[op]); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the configuration as TOML or YAML
func (c *Config) Encode(w io.Writer, format fconfig.Format) error {
	var err error
	switch format {
	case fconfig.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(c); err == nil {
			err = enc.Close()
		}
	default:
		err = toml.NewEncoder(w).Encode(c)
	}
	if err != nil {
		return tinyerror.Wrap(err, "failed to encode configuration").
			WithCode(tinyerror.CodeIOError).
			WithOperation("config.Encode").
			WithDetail("format", format.String())
	}
	return nil
}

// NumberPolicy returns the configured lexer number policy
func (c *Config) NumberPolicy() (parser.NumberPolicy, error) {
	return parser.ParseNumberPolicy(c.Lexer.NumberPolicy)
}

// PrecedenceTable returns the default operator table with the configured
// entries applied. A precedence of 0 removes an operator.
func (c *Config) PrecedenceTable() (*parser.PrecedenceTable, error) {
	table := parser.DefaultPrecedence()
	for _, op := range mapx.SortedKeys(c.Precedence) {
		value := c.Precedence[op]
		if err := validateOperator(op, value); err != nil {
			return nil, err
		}
		r, _ := utf8.DecodeRuneInString(op)
		table = table.With(r, value)
	}
	return table, nil
}

// validateOperator accepts a single printable ASCII character that the lexer
// emits as a character token
func validateOperator(op string, value int) error {
	reason := ""
	r, size := utf8.DecodeRuneInString(op)
	switch {
	case size == 0 || size != len(op):
		reason = "operator must be a single character"
	case r <= ' ' || r > '~':
		reason = "operator must be a printable ASCII character"
	case isReserved(r):
		reason = fmt.Sprintf("%q cannot be used as a binary operator", r)
	case value < 0:
		reason = "precedence must not be negative"
	}
	if reason == "" {
		return nil
	}
	return tinyerror.New(reason).
		WithCode(tinyerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", "precedence."+op).
		WithDetail("value", value)
}

// isReserved reports characters the lexer or grammar already claims
func isReserved(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '.', '#', '(', ')', ',', ';':
		return true
	}
	return false
}

func invalid(key, value string, cause error) error {
	return tinyerror.Wrap(cause, fmt.Sprintf("invalid %s %q", key, value)).
		WithCode(tinyerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key)
}
