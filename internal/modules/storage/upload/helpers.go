package upload

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// buildObjectKey prefixes the filename with the upload timestamp in millis,
// replacing whitespace runs with hyphens. The timestamp component makes
// collisions negligible; no retry on conflict.
func buildObjectKey(now time.Time, original string) string {
	name := whitespacePattern.ReplaceAllString(strings.TrimSpace(original), "-")
	if name == "" {
		name = strings.ReplaceAll(uuid.NewString(), "-", "")[:18]
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), name)
}
