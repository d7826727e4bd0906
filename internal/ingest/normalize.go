package ingest

import "strings"

// normalizeText canonicalizes raw extracted text: carriage returns are
// removed and trailing horizontal whitespace is stripped from every line.
// The function is a fixed point: normalizing already-normalized text is a
// no-op.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// slugify converts an arbitrary value into a lowercase URL-safe identifier
func slugify(value string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
