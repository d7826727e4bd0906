package ingest

// skillRule maps a stem pattern to a skill taxonomy tag
type skillRule struct {
	Pattern string
	Tag     string
}

// defaultSkillRules returns the ordered rule set used for skill-tag
// inference. Every rule whose pattern matches the stem contributes its tag,
// so a single question can receive multiple tags. Order is kept stable so
// emitted tag lists are deterministic.
func defaultSkillRules() []skillRule {
	return []skillRule{
		{Pattern: `(?i)verb|subject|agreement`, Tag: "Grammar::Subject-Verb Agreement"},
		{Pattern: `(?i)comb(ine|ination)|sentence`, Tag: "Rhetoric::Sentence Combining"},
		{Pattern: `(?i)function|f\(x\)|evaluate`, Tag: "Functions::Evaluation"},
		{Pattern: `(?i)solve|equation|linear`, Tag: "Algebra::Linear Equations"},
		{Pattern: `(?i)tone|attitude|narrator`, Tag: "Reading::Tone"},
		{Pattern: `(?i)experiment|data|graph|table|variable`, Tag: "Science::Data Interpretation"},
		{Pattern: `(?i)geometry|triangle|angle`, Tag: "Math::Geometry"},
		{Pattern: `(?i)probability|percent|ratio`, Tag: "Math::Probability"},
		{Pattern: `(?i)passage|author|main idea`, Tag: "Reading::Main Ideas"},
	}
}

// fallbackSkillTags maps each catalog section identity to the tag assigned
// when no rule matches, keeping skill tags non-empty for every known section.
func fallbackSkillTags() map[string]string {
	return map[string]string{
		"english": "English::Conventions",
		"math":    "Math::General",
		"reading": "Reading::Comprehension",
		"science": "Science::Reasoning",
		"writing": "Writing::Composition",
	}
}

// gridInHintPattern matches textual hints that a question expects a typed
// numeric or fraction answer rather than a choice selection
const gridInHintPattern = `(?i)grid\s*-?in|record your answer|enter your answer`
