package ingest

import (
	"encoding/json"
	"fmt"
)

// ExamFamily identifies the family of standardized test a blueprint belongs to
type ExamFamily string

const (
	ExamFamilyACT ExamFamily = "ACT"
	ExamFamilySAT ExamFamily = "SAT"
)

// QuestionKind identifies the answer format of a question
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple-choice"
	KindGridIn         QuestionKind = "grid-in"
	KindMultiSelect    QuestionKind = "multi-select"
	KindEssay          QuestionKind = "essay"
)

// WarningSeverity classifies how serious a parse warning is
type WarningSeverity string

const (
	SeverityInfo    WarningSeverity = "info"
	SeverityWarning WarningSeverity = "warning"
	SeverityError   WarningSeverity = "error"
)

// AnswerKey holds one or more acceptable answers for a question. The wire
// contract allows either a bare string or an array of strings, so a
// single-element key marshals as a string and anything longer as an array.
type AnswerKey []string

// MarshalJSON implements json.Marshaler
func (k AnswerKey) MarshalJSON() ([]byte, error) {
	if len(k) == 1 {
		return json.Marshal(k[0])
	}
	return json.Marshal([]string(k))
}

// UnmarshalJSON implements json.Unmarshaler and accepts both wire forms
func (k *AnswerKey) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*k = AnswerKey{single}
		return nil
	}

	var multi []string
	if err := json.Unmarshal(data, &multi); err != nil {
		return fmt.Errorf("answer key must be a string or an array of strings: %w", err)
	}
	*k = AnswerKey(multi)
	return nil
}

// QuestionChoice represents one lettered answer option
type QuestionChoice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// ExamQuestion represents a single parsed question within a section.
// Order carries the question number observed in the source text, so order
// values need not be contiguous when malformed items were skipped.
type ExamQuestion struct {
	ID        string                 `json:"id"`
	Order     int                    `json:"order"`
	Kind      QuestionKind           `json:"kind"`
	Stem      string                 `json:"stem"`
	Choices   []QuestionChoice       `json:"choices,omitempty"`
	AnswerKey AnswerKey              `json:"answerKey,omitempty"`
	SkillTags []string               `json:"skillTags"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// ExamSection represents one ordered section of the exam
type ExamSection struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	Order             int            `json:"order"`
	TimeLimitMinutes  int            `json:"timeLimitMinutes"`
	Instructions      []string       `json:"instructions"`
	CalculatorAllowed bool           `json:"calculatorAllowed"`
	Questions         []ExamQuestion `json:"questions"`
}

// ExamBlueprintMetadata carries document-level ingestion metadata
type ExamBlueprintMetadata struct {
	ExamFamily          ExamFamily `json:"examFamily"`
	Version             string     `json:"version,omitempty"`
	SourcePDFName       string     `json:"sourcePdfName,omitempty"`
	IngestionConfidence float64    `json:"ingestionConfidence"`
	CreatedAt           string     `json:"createdAt"`
	Author              string     `json:"author,omitempty"`
	Notes               string     `json:"notes,omitempty"`
}

// ExamBlueprint is the fully structured representation of one exam document
type ExamBlueprint struct {
	ID       string                `json:"id"`
	Title    string                `json:"title"`
	Synopsis string                `json:"synopsis,omitempty"`
	Metadata ExamBlueprintMetadata `json:"metadata"`
	Sections []ExamSection         `json:"sections"`
}

// ParsedExamWarning describes an ambiguity or gap encountered while parsing
type ParsedExamWarning struct {
	Message  string          `json:"message"`
	Context  string          `json:"context,omitempty"`
	Severity WarningSeverity `json:"severity"`
}

// ParsedExamPayload is the complete result of one ingestion run. It is plain
// data with no behavior so it can cross a process or network boundary
// unchanged.
type ParsedExamPayload struct {
	Exam     *ExamBlueprint      `json:"exam"`
	Warnings []ParsedExamWarning `json:"warnings"`
	RawText  string              `json:"rawText,omitempty"`
}

// QuestionCount returns the total number of questions across all sections
func (b *ExamBlueprint) QuestionCount() int {
	count := 0
	for _, section := range b.Sections {
		count += len(section.Questions)
	}
	return count
}
