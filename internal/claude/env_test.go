package claude

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterEnvRemovesBlockedVars(t *testing.T) {
	env := []string{
		"PATH=/usr/bin",
		"CLAUDECODE=1",
		"CLAUDE_CODE_ENTRYPOINT=cli",
		"CLAUDE_CODE_SSE_PORT=12345",
		"HOME=/home/user",
	}

	filtered := filterEnv(env)

	assert.Equal(t, []string{"PATH=/usr/bin", "HOME=/home/user"}, filtered)
}

func TestFilterEnvKeepsSimilarPrefixes(t *testing.T) {
	// Only exact name matches are stripped.
	env := []string{
		"CLAUDECODE_EXTRA=x",
		"MY_CLAUDECODE=y",
	}

	assert.Equal(t, env, filterEnv(env))
}

func TestFilterEnvEmpty(t *testing.T) {
	assert.Empty(t, filterEnv(nil))
}
