package signal

import "regexp"

// Intent tags are a machine-writable side channel embedded in the free-text
// comments field: zero or more [objetivo:<tag>] markers, order insensitive.
var intentTagRe = regexp.MustCompile(`\[objetivo:([^\]]+)\]`)

// ExtractIntentTags returns the deduplicated, insertion-ordered intent tags
// found in comments, plus the comment text with every tag stripped and
// whitespace collapsed. Both halves must survive independently: the tags for
// routing, the prose for downstream display.
func ExtractIntentTags(comments string) (tags []string, text string) {
	seen := make(map[string]struct{})
	for _, m := range intentTagRe.FindAllStringSubmatch(comments, -1) {
		tag := CollapseSpaces(m[1])
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	text = CollapseSpaces(intentTagRe.ReplaceAllString(comments, " "))
	return tags, text
}
