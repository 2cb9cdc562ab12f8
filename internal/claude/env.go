package claude

import "strings"

// blockedEnvVars are stripped from the child environment before spawn.
// The CLI changes behavior when it believes it runs inside an agent or
// automation session; these are the markers it looks for.
var blockedEnvVars = []string{
	"CLAUDECODE",
	"CLAUDE_CODE_ENTRYPOINT",
	"CLAUDE_CODE_SSE_PORT",
}

// filterEnv returns a copy of env with the blocked variables removed.
func filterEnv(env []string) []string {
	filtered := make([]string, 0, len(env))
	for _, kv := range env {
		if isBlocked(kv) {
			continue
		}
		filtered = append(filtered, kv)
	}
	return filtered
}

func isBlocked(kv string) bool {
	name, _, _ := strings.Cut(kv, "=")
	for _, blocked := range blockedEnvVars {
		if name == blocked {
			return true
		}
	}
	return false
}
