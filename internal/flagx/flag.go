// Package flagx helps several configuration loaders share one command line.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// ConfigEnvVar names the environment variable consulted when no -c/-config
// flag is present.
const ConfigEnvVar = "RECIPEADMIN_CONFIG"

// FilterArgs keeps only the flags listed in allowedFlags (plus their values)
// so that a FlagSet does not trip over flags owned by someone else.
//
// Both "-f value" and "-f=value" forms are recognised. A double-dash spelling
// ("--f") is accepted for any single-dash name in allowedFlags.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags)*2)
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
		if strings.HasPrefix(f, "-") && !strings.HasPrefix(f, "--") {
			allowed["-"+f] = struct{}{}
		}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// Positional returns the arguments left after removing every flag named in
// knownFlags together with its value. Used by commands that take a verb
// after their flags (manage migrate, manage create-admin ...).
func Positional(args []string, knownFlags []string) []string {
	known := make(map[string]struct{}, len(knownFlags))
	for _, f := range knownFlags {
		known[f] = struct{}{}
		known["-"+f] = struct{}{}
	}
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			rest = append(rest, arg)
			continue
		}
		if strings.Contains(arg, "=") {
			continue
		}
		if _, ok := known[arg]; ok && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
		}
	}
	return rest
}

// ConfigFile returns the config file path given with -c or -config, falling
// back to $RECIPEADMIN_CONFIG. Empty means "no file".
func ConfigFile() string {
	var config string
	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	if config == "" {
		config = os.Getenv(ConfigEnvVar)
	}
	return config
}
