package mdblock

import "strings"

const maxFrontMatterProbeLines = 1024

// stripFrontMatter removes a leading front-matter block delimited by
// "---", "+++" or ";;;". The block is only recognised when the line after
// the opener looks like metadata and a matching closer follows; otherwise
// lines are returned unchanged.
func stripFrontMatter(lines []string) []string {
	if len(lines) < 2 {
		return lines
	}
	delim, ok := parseOpeningFrontMatterDelimiter(lines[0])
	if !ok {
		return lines
	}
	if !frontMatterMetadataLikely(lines[1]) {
		return lines
	}
	limit := len(lines)
	if limit > maxFrontMatterProbeLines {
		limit = maxFrontMatterProbeLines
	}
	for i := 2; i < limit; i++ {
		if strings.TrimSpace(lines[i]) == delim {
			return lines[i+1:]
		}
	}
	return lines
}

func parseOpeningFrontMatterDelimiter(line string) (string, bool) {
	switch trimmed := strings.TrimSpace(trimBOM(line)); trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
