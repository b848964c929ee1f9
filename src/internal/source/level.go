// FILE: clilogger/src/internal/source/level.go
package source

import "strings"

var levelPatterns = []struct {
	patterns []string
	level    string
}{
	{[]string{"[FATAL]", "FATAL:", " FATAL ", "[CRIT]", "CRITICAL:"}, "fatal"},
	{[]string{"[ERROR]", "ERROR:", " ERROR ", "ERR:", "[ERR]"}, "error"},
	{[]string{"[WARN]", "WARN:", " WARN ", "WARNING:", "[WARNING]"}, "warn"},
	{[]string{"[INFO]", "INFO:", " INFO ", "[INF]", "INF:"}, "info"},
	{[]string{"[DEBUG]", "DEBUG:", " DEBUG ", "[DBG]", "DBG:"}, "debug"},
	{[]string{"[TRACE]", "TRACE:", " TRACE ", "[TRC]"}, "trace"},
}

// DetectLevel returns the level name marked in line, most severe first, or "".
func DetectLevel(line string) string {
	upperLine := strings.ToUpper(line)
	for _, group := range levelPatterns {
		for _, pattern := range group.patterns {
			if strings.Contains(upperLine, pattern) {
				return group.level
			}
		}
	}
	return ""
}
