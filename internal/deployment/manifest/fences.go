package manifest

import (
	"regexp"
	"strings"
)

// fenceLine matches a whole line holding a markdown fence, with or without a
// language tag.
var fenceLine = regexp.MustCompile("(?m)^[ \t]*```[A-Za-z0-9_.+-]*[ \t]*\r?$\n?")

var inlineFence = strings.NewReplacer("```yaml", "", "```yml", "", "```", "")

// StripCodeFences removes markdown code fences from a model reply and trims
// the surrounding whitespace. Applying it twice gives the same result as
// applying it once.
func StripCodeFences(text string) string {
	out := fenceLine.ReplaceAllString(text, "")
	out = inlineFence.Replace(out)
	return strings.TrimSpace(out)
}
