package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"igcompare/core"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5555", cfg.Server.Addr)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Equal(t, core.DefaultOrgHints, cfg.OrgFilter.Hints)
	assert.False(t, cfg.OrgFilter.ExcludeByDefault)
	assert.Equal(t, "en", cfg.Presentation.Locale)
	assert.Equal(t, 2000000, cfg.Limits.MaxInputChars)
	assert.Equal(t, language.English, cfg.Locale())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("IGCOMPARE_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("IGCOMPARE_LOG_VERBOSITY", "2")
	t.Setenv("IGCOMPARE_ORGFILTER_HINTS", "club,fanpage")
	t.Setenv("IGCOMPARE_ORGFILTER_EXCLUDE_BY_DEFAULT", "true")
	t.Setenv("IGCOMPARE_PRESENTATION_LOCALE", "pt-BR")
	t.Setenv("IGCOMPARE_LIMITS_MAX_INPUT_CHARS", "1000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, []string{"club", "fanpage"}, cfg.OrgFilter.Hints)
	assert.True(t, cfg.OrgFilter.ExcludeByDefault)
	assert.Equal(t, language.MustParse("pt-BR"), cfg.Locale())
	assert.Equal(t, 1000, cfg.Limits.MaxInputChars)

	assert.True(t, cfg.Filter().Matches("bookclub99"))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad locale", "IGCOMPARE_PRESENTATION_LOCALE", "not a locale!"},
		{"zero limit", "IGCOMPARE_LIMITS_MAX_INPUT_CHARS", "0"},
		{"blank addr", "IGCOMPARE_SERVER_ADDR", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.addr", envKey("IGCOMPARE_SERVER_ADDR"))
	assert.Equal(t, "orgfilter.exclude_by_default", envKey("IGCOMPARE_ORGFILTER_EXCLUDE_BY_DEFAULT"))
	assert.Equal(t, "limits.max_input_chars", envKey("IGCOMPARE_LIMITS_MAX_INPUT_CHARS"))
}
