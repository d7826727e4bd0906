package ingest

// Confidence signal constants. Per-question confidence proxies parse
// certainty: a question whose choices were reconstructed parsed cleanly more
// often than one reduced to a bare stem.
const (
	confidenceWithChoices    = 0.9
	confidenceWithoutChoices = 0.7
	confidenceMissingSignal  = 0.6
	confidenceNoSections     = 0.5
	confidenceNoText         = 0.3
)

// questionConfidence reads the confidence signal a question carries in its
// metadata, falling back to a conservative default when the signal is absent
// or not numeric.
func questionConfidence(q ExamQuestion) float64 {
	if q.Metadata == nil {
		return confidenceMissingSignal
	}
	value, ok := q.Metadata["confidence"].(float64)
	if !ok {
		return confidenceMissingSignal
	}
	return value
}

// sectionConfidence computes the arithmetic mean of a section's question
// confidences. The boolean reports whether the section carries a confidence
// at all; a section with no questions does not.
func sectionConfidence(section ExamSection) (float64, bool) {
	if len(section.Questions) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, q := range section.Questions {
		sum += questionConfidence(q)
	}
	return sum / float64(len(section.Questions)), true
}

// aggregateConfidence computes the document-level ingestion confidence: the
// arithmetic mean of section confidences across sections that have at least
// one question, or a conservative fallback when no section does.
func aggregateConfidence(sections []ExamSection) float64 {
	sum := 0.0
	counted := 0
	for _, section := range sections {
		if confidence, ok := sectionConfidence(section); ok {
			sum += confidence
			counted++
		}
	}

	if counted == 0 {
		return confidenceNoSections
	}
	return sum / float64(counted)
}
