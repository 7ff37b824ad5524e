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
			args:         []string{"-c", "conf.json", "-a", "http://localhost:8000"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.json", "-s", "diskv"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag followed by another flag keeps no value",
			args:         []string{"-d", "-l", "debug"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "several allowed flags keep order",
			args:         []string{"-a", "http://h:1", "-c", "c.json", "-d", "/tmp/r"},
			allowedFlags: []string{"-a", "-d"},
			want:         []string{"-a", "http://h:1", "-d", "/tmp/r"},
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

func TestConfigFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c", func(t *testing.T) {
		os.Args = []string{"reflecta", "-c", "/etc/reflecta.json"}
		assert.Equal(t, "/etc/reflecta.json", ConfigFile())
	})

	t.Run("long -config wins when last", func(t *testing.T) {
		os.Args = []string{"reflecta", "-c", "/a.json", "-config", "/b.json"}
		assert.Equal(t, "/b.json", ConfigFile())
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "/from/env.json")
		os.Args = []string{"reflecta", "-l", "debug"}
		assert.Equal(t, "/from/env.json", ConfigFile())
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "/from/env.json")
		os.Args = []string{"reflecta", "-c", "/from/flag.json"}
		assert.Equal(t, "/from/flag.json", ConfigFile())
	})

	t.Run("nothing given", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")
		os.Args = []string{"reflecta"}
		assert.Empty(t, ConfigFile())
	})
}
