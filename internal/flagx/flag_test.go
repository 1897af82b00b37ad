package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.toml", "-a", "localhost"},
			allowedFlags: []string{"-config"},
			want:         []string{"-config=alt.toml"},
		},
		{
			name:         "double dash accepted for single dash name",
			args:         []string{"--u", "http://api", "-x", "1"},
			allowedFlags: []string{"-u"},
			want:         []string{"--u", "http://api"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag followed by another flag has no value",
			args:         []string{"-c", "-t", "5"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestPositional(t *testing.T) {
	got := Positional([]string{"-c", "cfg.toml", "create-admin", "-d=dsn", "alice", "editor"}, []string{"-c", "-d"})
	assert.Equal(t, []string{"create-admin", "alice", "editor"}, got)
}

func TestConfigFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "env.json")
		os.Args = []string{"bin", "-c", "flag.json"}
		assert.Equal(t, "flag.json", ConfigFile())
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "env.toml")
		os.Args = []string{"bin"}
		assert.Equal(t, "env.toml", ConfigFile())
	})

	t.Run("nothing set", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")
		os.Args = []string{"bin", "-a", "x"}
		assert.Equal(t, "", ConfigFile())
	})
}
