package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/cpfetch"
	"github.com/fwojciec/cpfetch/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads every setting", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cpfetch.yaml")
		content := `format: markdown
timeout: 30s
readyTimeout: 5s
apiURL: http://localhost:8080/api
userAgent: test-agent
browser: /usr/bin/chromium
rateLimit: 2
static: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := yaml.Load(path)

		require.NoError(t, err)
		assert.Equal(t, &yaml.Config{
			Format:       "markdown",
			Timeout:      30 * time.Second,
			ReadyTimeout: 5 * time.Second,
			APIURL:       "http://localhost:8080/api",
			UserAgent:    "test-agent",
			Browser:      "/usr/bin/chromium",
			RateLimit:    2,
			Static:       true,
		}, cfg)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, cpfetch.ENOTFOUND, cpfetch.ErrorCode(err))
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("empty document is empty config", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Decode(strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, &yaml.Config{}, cfg)
	})

	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown key", content: "formt: json\n"},
		{name: "unknown format", content: "format: xml\n"},
		{name: "negative timeout", content: "timeout: -1s\n"},
		{name: "negative rate limit", content: "rateLimit: -0.5\n"},
		{name: "malformed duration", content: "timeout: soon\n"},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := yaml.Decode(strings.NewReader(tt.content))

			assert.Equal(t, cpfetch.EINVALID, cpfetch.ErrorCode(err))
		})
	}
}
