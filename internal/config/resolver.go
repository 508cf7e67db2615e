package config

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

// Loader is a kong.ConfigurationLoader for HCL files.
func Loader(r io.Reader) (kong.Resolver, error) {
	name := "config.hcl"
	if n, ok := r.(interface{ Name() string }); ok {
		name = n.Name()
	}
	f, err := Read(r, name)
	if err != nil {
		return nil, err
	}
	return f.Resolver(), nil
}

// Values flattens the file into flag values keyed by section and flag name.
// Global settings use the empty section; command blocks use the command name.
func (f *File) Values() map[string]map[string]string {
	values := map[string]map[string]string{"": {}}

	if f.LogLevel != nil {
		values[""]["log-level"] = *f.LogLevel
	}
	if f.LogFile != nil {
		values[""]["log-file"] = *f.LogFile
	}
	if f.NoColor != nil {
		values[""]["no-color"] = strconv.FormatBool(*f.NoColor)
	}

	if r := f.Random; r != nil {
		section := map[string]string{}
		setInt(section, "min-length", r.MinLength)
		setInt(section, "max-length", r.MaxLength)
		setInt(section, "min-score", r.MinScore)
		setInt(section, "max-score", r.MaxScore)
		setInt(section, "max-wrong-guesses", r.MaxWrongGuesses)
		if r.Seed != nil {
			section["seed"] = strconv.FormatInt(*r.Seed, 10)
		}
		values["random"] = section
	}

	if m := f.Manual; m != nil {
		section := map[string]string{}
		setInt(section, "max-wrong-guesses", m.MaxWrongGuesses)
		values["manual"] = section
	}

	return values
}

func setInt(section map[string]string, key string, v *int) {
	if v != nil {
		section[key] = strconv.Itoa(*v)
	}
}

// Resolver returns a kong resolver supplying file values for flags the user
// did not pass. Command flags are looked up in the command's block first.
func (f *File) Resolver() kong.Resolver {
	values := f.Values()
	return kong.ResolverFunc(func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		name := strings.ReplaceAll(flag.Name, "_", "-")
		if parent != nil && parent.Command != nil {
			if v, ok := values[parent.Command.Name][name]; ok {
				return v, nil
			}
		}
		if v, ok := values[""][name]; ok {
			return v, nil
		}
		return nil, nil
	})
}
