package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		initial     *Config
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://10.0.0.5:3000/api", "-s", "/tmp/s.db", "-t", "10", "-l", "debug"},
			expected: &Config{APIURL: "http://10.0.0.5:3000/api", StoragePath: "/tmp/s.db", RequestTimeout: 10 * time.Second, LogLevel: "debug"}},
		{name: "unknown flags are ignored", args: []string{"cmd", "-x", "1", "-a", "http://h/api"},
			expected: &Config{APIURL: "http://h/api"}},
		{name: "no -t keeps a sub-second timeout", args: []string{"cmd", "-l", "warn"},
			initial:  &Config{RequestTimeout: 1500 * time.Millisecond},
			expected: &Config{RequestTimeout: 1500 * time.Millisecond, LogLevel: "warn"}},
		{name: "-t 0 disables the timeout", args: []string{"cmd", "-t", "0"},
			initial:  &Config{RequestTimeout: 500 * time.Millisecond},
			expected: &Config{}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}
			if tt.initial != nil {
				*config = *tt.initial
			}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
