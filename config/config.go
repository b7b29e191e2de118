// Package config loads formatter.Settings from an optional YAML file and binds CLI flag
// overrides on top of it, the same layering MacroPower-x's magicschema.Config establishes:
// flags default to whatever the YAML file (or the built-in defaults) already produced, so
// CLI > file > built-in.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"

	"github.com/teleivo/phpfmt/formatter"
)

// file is the on-disk YAML shape. Fields are optional; any field absent from the document keeps
// whatever formatter.DefaultSettings() (or a caller-supplied base) already set.
type file struct {
	PrintWidth                  *int    `yaml:"printWidth"`
	TabWidth                    *int    `yaml:"tabWidth"`
	UseTabs                     *bool   `yaml:"useTabs"`
	TrailingComma               *bool   `yaml:"trailingComma"`
	BreakPromotedPropertiesList *bool   `yaml:"breakPromotedPropertiesList"`
	MethodChainBreakingStyle    *string `yaml:"methodChainBreakingStyle"`
}

// Flags holds the CLI flag names bound by RegisterFlags, mirroring magicschema.Config.Flags so
// callers can rename flags without touching the binding logic.
type Flags struct {
	PrintWidth                  string
	TabWidth                    string
	UseTabs                     string
	TrailingComma               string
	BreakPromotedPropertiesList string
	MethodChainBreakingStyle    string
}

// Config carries the formatter.Settings a CLI invocation resolved, plus the flag names used to
// override it. Construct with Load, then call RegisterFlags before pflag.Parse.
type Config struct {
	Flags    Flags
	Settings formatter.Settings

	chainStyle string
}

// defaultFlags returns the built-in flag names, analogous to magicschema.NewConfig's Flags.
func defaultFlags() Flags {
	return Flags{
		PrintWidth:                  "print-width",
		TabWidth:                    "tab-width",
		UseTabs:                     "use-tabs",
		TrailingComma:               "trailing-comma",
		BreakPromotedPropertiesList: "break-promoted-properties-list",
		MethodChainBreakingStyle:    "method-chain-breaking-style",
	}
}

// Load reads path (if non-empty) as a YAML document overriding formatter.DefaultSettings(), and
// returns a Config ready for RegisterFlags. An empty path yields the built-in defaults
// untouched.
func Load(path string) (*Config, error) {
	settings := formatter.DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}

		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}

		if err := applyFile(&settings, f); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	return &Config{
		Flags:      defaultFlags(),
		Settings:   settings,
		chainStyle: chainStyleName(settings.MethodChainBreakingStyle),
	}, nil
}

func applyFile(s *formatter.Settings, f file) error {
	if f.PrintWidth != nil {
		s.PrintWidth = *f.PrintWidth
	}
	if f.TabWidth != nil {
		s.TabWidth = *f.TabWidth
	}
	if f.UseTabs != nil {
		s.UseTabs = *f.UseTabs
	}
	if f.TrailingComma != nil {
		s.TrailingComma = *f.TrailingComma
	}
	if f.BreakPromotedPropertiesList != nil {
		s.BreakPromotedPropertiesList = *f.BreakPromotedPropertiesList
	}
	if f.MethodChainBreakingStyle != nil {
		style, err := parseChainStyle(*f.MethodChainBreakingStyle)
		if err != nil {
			return err
		}
		s.MethodChainBreakingStyle = style
	}
	return nil
}

// RegisterFlags binds CLI overrides of every Settings field onto flags, grounded on
// magicschema.Config.RegisterFlags: each flag's default is whatever Load already produced, so a
// flag the user never passes leaves the file/built-in value untouched.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Settings.PrintWidth, c.Flags.PrintWidth, c.Settings.PrintWidth,
		"target column width the layout engine tries to keep lines within")
	flags.IntVar(&c.Settings.TabWidth, c.Flags.TabWidth, c.Settings.TabWidth,
		"number of columns one indentation level represents")
	flags.BoolVar(&c.Settings.UseTabs, c.Flags.UseTabs, c.Settings.UseTabs,
		"render indentation as tab characters instead of spaces")
	flags.BoolVar(&c.Settings.TrailingComma, c.Flags.TrailingComma, c.Settings.TrailingComma,
		"append a trailing comma to broken parameter and argument lists")
	flags.BoolVar(&c.Settings.BreakPromotedPropertiesList, c.Flags.BreakPromotedPropertiesList,
		c.Settings.BreakPromotedPropertiesList,
		"force a constructor's parameter list to break when any parameter is a promoted property")
	flags.StringVar(&c.chainStyle, c.Flags.MethodChainBreakingStyle, c.chainStyle,
		"method-call chain layout: \"same-line\" or \"next-line\"")
}

// ResolveFlags must be called after pflag.Parse so the string-typed
// method-chain-breaking-style flag value is translated back into
// formatter.MethodChainBreakingStyle.
func (c *Config) ResolveFlags() error {
	style, err := parseChainStyle(c.chainStyle)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Settings.MethodChainBreakingStyle = style
	return nil
}

func parseChainStyle(s string) (formatter.MethodChainBreakingStyle, error) {
	switch s {
	case "", "same-line":
		return formatter.SameLine, nil
	case "next-line":
		return formatter.NextLine, nil
	}
	return 0, fmt.Errorf("unknown methodChainBreakingStyle %q (want \"same-line\" or \"next-line\")", s)
}

func chainStyleName(style formatter.MethodChainBreakingStyle) string {
	if style == formatter.NextLine {
		return "next-line"
	}
	return "same-line"
}
