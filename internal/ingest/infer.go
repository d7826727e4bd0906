package ingest

import "regexp"

// minChoicesForMultipleChoice is the threshold at which a parsed question is
// treated as multiple-choice regardless of other signals. This is a
// documented heuristic, not a universal rule: downstream consumers depend on
// its exact leniency, so it should not change without product input.
const minChoicesForMultipleChoice = 4

// inferKind decides whether a question is multiple-choice or grid-in style.
// Rules are evaluated in order: a full set of choices always wins, then a
// grid-in hint phrase or membership in the math section forces grid-in, and
// everything else defaults to multiple-choice even with fewer than four
// parsed choices.
func inferKind(sectionID, questionText string, choiceCount int) QuestionKind {
	if choiceCount >= minChoicesForMultipleChoice {
		return KindMultipleChoice
	}

	hint := regexp.MustCompile(gridInHintPattern)
	if hint.MatchString(questionText) || sectionID == "math" {
		return KindGridIn
	}

	return KindMultipleChoice
}

// inferSkillTags matches the stem against the ordered rule set and returns
// every tag whose pattern matched, deduplicated but in rule order. When no
// rule matches, the section's fallback tag is assigned so the result is
// always non-empty for known sections.
func inferSkillTags(sectionID, stem string) []string {
	var tags []string
	seen := make(map[string]bool)

	for _, rule := range defaultSkillRules() {
		if seen[rule.Tag] {
			continue
		}
		if regexp.MustCompile(rule.Pattern).MatchString(stem) {
			tags = append(tags, rule.Tag)
			seen[rule.Tag] = true
		}
	}

	if len(tags) == 0 {
		if fallback, ok := fallbackSkillTags()[sectionID]; ok {
			tags = append(tags, fallback)
		}
	}

	return tags
}
