package ingest

import (
	"regexp"
	"strconv"
)

// Matchers are built fresh per call rather than held in package state so no
// matching state is ever shared across documents.
const (
	answerKeyMarkerPattern = `(?i)answer\s*key|key\s*to\s*the\s*test`
	answerEntryPattern     = `(?i)(\d{1,3})\s*(?:[.:]\s*|\s+)([A-JF]|\d{1,4}|Yes|No)`
)

// extractAnswerKeyMap locates an answer-key region and builds a mapping from
// question number to the answer token recorded for it. The search window is
// restricted to the text from the first answer-key heading to end of document
// when a heading exists, otherwise the whole document is scanned.
//
// This is a best-effort heuristic: a question body containing number-letter
// pairs can produce false positives. The document is scanned left to right
// and later matches overwrite earlier ones, so the final occurrence of a
// number wins.
func extractAnswerKeyMap(text string) map[int]string {
	marker := regexp.MustCompile(answerKeyMarkerPattern)
	portion := text
	if loc := marker.FindStringIndex(text); loc != nil {
		portion = text[loc[0]:]
	}

	answers := make(map[int]string)
	entry := regexp.MustCompile(answerEntryPattern)
	for _, match := range entry.FindAllStringSubmatch(portion, -1) {
		number, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if token := match[2]; token != "" {
			answers[number] = token
		}
	}

	return answers
}
