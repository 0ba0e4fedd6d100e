package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{})
	require.NoError(t, err)

	want := &Config{
		ConfigPath: DefaultConfigPath,
		Mode:       "production",
		Format:     "json",
		OutputPath: "-",
		LogFormat:  "text",
		LogLevel:   "info",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestNewConfig_Normalizes(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Mode: "Development", Format: "yml"})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Mode)
	require.Equal(t, "yaml", cfg.Format)
}

func TestNewConfig_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		cfg  Config
	}{
		{name: "mode", cfg: Config{Mode: "staging"}},
		{name: "format", cfg: Config{Format: "xml"}},
		{name: "source extension", cfg: Config{SourceExtension: "ts"}},
		{name: "template extension", cfg: Config{TemplateExtension: "."}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewConfig(tc.cfg)
			require.Error(t, err)
		})
	}
}
