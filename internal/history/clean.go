package history

import "strings"

// trailerPrefixes are review-tool trailer lines stripped from example
// messages so the model does not learn to reproduce them.
var trailerPrefixes = []string{
	"Change-Id:",
	"Reviewed-on:",
	"Reviewed-by:",
	"Tested-by:",
	"Signed-off-by:",
}

// Clean removes known boilerplate trailer lines from a commit message and
// trims surrounding whitespace. It is pure and idempotent.
func Clean(msg string) string {
	lines := strings.Split(strings.TrimSpace(msg), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isTrailer(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func isTrailer(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range trailerPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
