package ingest

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

// rawTextLimit caps the diagnostic copy of the normalized source text
// attached to the payload.
const rawTextLimit = 25000

const noTextWarning = "The PDF did not contain extractable text. Attempt OCR or upload a clearer scan."

var sectionInstructions = []string{
	"Review the auto-detected questions and confirm accuracy.",
	"Use the editor to adjust passages, diagrams, or answer options if needed.",
}

// ParseOptions carries optional document context handed over by the
// text-extraction collaborator.
type ParseOptions struct {
	// FileName is the display name of the uploaded document, if known
	FileName string
	// DocTitle is the Title entry of the document's info dictionary, if any
	DocTitle string
	// DocAuthor is the Author entry of the document's info dictionary, if any
	DocAuthor string
}

// Parser converts raw extracted exam text into a structured blueprint. It
// holds no state across invocations: every Parse call is a pure function of
// its inputs, so a single Parser may be shared by any number of concurrent
// callers.
type Parser struct{}

// NewParser creates a new exam text parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse runs the full text-to-structure pipeline: normalization, answer-key
// extraction, section and question segmentation, stem/choice classification,
// kind and skill inference, confidence aggregation, and blueprint assembly.
// Given text, Parse never fails: every recoverable condition surfaces as a
// warning entry or a lowered confidence value, and an entirely empty input
// yields a valid zero-section blueprint rather than an error.
func (p *Parser) Parse(rawText string, opts ParseOptions) *ParsedExamPayload {
	text := normalizeText(rawText)
	createdAt := time.Now().UTC().Format(time.RFC3339)

	if text == "" {
		return &ParsedExamPayload{
			Exam: &ExamBlueprint{
				ID:    p.blueprintID(opts.FileName),
				Title: p.blueprintTitle(opts.FileName),
				Metadata: ExamBlueprintMetadata{
					ExamFamily:          ExamFamilyACT,
					Version:             "unknown",
					SourcePDFName:       opts.FileName,
					IngestionConfidence: confidenceNoText,
					CreatedAt:           createdAt,
				},
				Sections: []ExamSection{},
			},
			Warnings: []ParsedExamWarning{
				{Message: noTextWarning, Severity: SeverityError},
			},
		}
	}

	answerMap := extractAnswerKeyMap(text)

	sections := []ExamSection{}
	warnings := []ParsedExamWarning{}

	for i, block := range segmentSections(text) {
		section, sectionWarnings := p.parseSection(block.def, i+1, block.content, answerMap)
		sections = append(sections, section)
		warnings = append(warnings, sectionWarnings...)
	}

	if len(sections) == 0 {
		warnings = append(warnings, ParsedExamWarning{
			Message:  "No ACT-style sections were detected. Confirm the PDF is a full practice test.",
			Severity: SeverityWarning,
		})
	}

	version := opts.DocTitle
	if version == "" {
		version = "unlabeled"
	}

	sourceName := opts.FileName
	if sourceName == "" {
		sourceName = "uploaded PDF"
	}

	blueprint := &ExamBlueprint{
		ID:       p.blueprintID(opts.FileName),
		Title:    p.blueprintTitle(opts.FileName),
		Sections: sections,
		Metadata: ExamBlueprintMetadata{
			ExamFamily:          ExamFamilyACT,
			Version:             version,
			SourcePDFName:       opts.FileName,
			IngestionConfidence: aggregateConfidence(sections),
			CreatedAt:           createdAt,
			Author:              opts.DocAuthor,
		},
	}

	questionCount := blueprint.QuestionCount()
	blueprint.Synopsis = fmt.Sprintf("Auto-generated from %s with %d detected questions.", sourceName, questionCount)
	blueprint.Metadata.Notes = fmt.Sprintf("Detected %d sections and %d questions via automated ingestion.",
		len(sections), questionCount)

	rawCopy := text
	if len(rawCopy) > rawTextLimit {
		// Back the cut up to a rune boundary so the copy stays valid UTF-8.
		cut := rawTextLimit
		for cut > 0 && !utf8.RuneStart(rawCopy[cut]) {
			cut--
		}
		rawCopy = rawCopy[:cut]
	}

	return &ParsedExamPayload{
		Exam:     blueprint,
		Warnings: warnings,
		RawText:  rawCopy,
	}
}

// parseSection segments one section block into questions and builds the
// section entity. A block with no detectable questions raises a
// section-scoped warning but is still emitted with an empty question list.
func (p *Parser) parseSection(def sectionDefinition, order int, content string, answerMap map[int]string) (ExamSection, []ParsedExamWarning) {
	questions := []ExamQuestion{}
	warnings := []ParsedExamWarning{}

	for _, segment := range segmentQuestions(content) {
		question, warning := p.buildQuestion(def, segment, answerMap)
		if warning != nil {
			warnings = append(warnings, *warning)
		}
		questions = append(questions, question)
	}

	if len(questions) == 0 {
		warnings = append(warnings, ParsedExamWarning{
			Message:  fmt.Sprintf("No questions detected in %s section", def.Name),
			Context:  def.Name,
			Severity: SeverityWarning,
		})
	}

	return ExamSection{
		ID:                def.ID,
		Name:              def.Name,
		Description:       fmt.Sprintf("%s section parsed from PDF", def.Name),
		Order:             order,
		TimeLimitMinutes:  def.TimeLimitMinutes,
		Instructions:      sectionInstructions,
		CalculatorAllowed: def.ID == "math",
		Questions:         questions,
	}, warnings
}

// buildQuestion classifies one question segment and assembles the question
// entity. An unparseable stem yields a warning and a placeholder stem; the
// question itself is never dropped.
func (p *Parser) buildQuestion(def sectionDefinition, segment questionSegment, answerMap map[int]string) (ExamQuestion, *ParsedExamWarning) {
	stem, rawChoices := classifyStemAndChoices(segment.body)

	var warning *ParsedExamWarning
	if stem == "" {
		warning = &ParsedExamWarning{
			Message:  fmt.Sprintf("Question %d stem could not be parsed", segment.number),
			Context:  def.Name,
			Severity: SeverityWarning,
		}
		stem = fmt.Sprintf("Question %d", segment.number)
	}

	var choices []QuestionChoice
	for i, choice := range rawChoices {
		choices = append(choices, QuestionChoice{
			ID:    fmt.Sprintf("%s-%d-%s-%d", def.ID, segment.number, choice.Label, i),
			Label: choice.Label,
			Text:  choice.Text,
		})
	}

	confidence := confidenceWithoutChoices
	if len(choices) > 0 {
		confidence = confidenceWithChoices
	}

	question := ExamQuestion{
		ID:        fmt.Sprintf("%s-%d", def.ID, segment.number),
		Order:     segment.number,
		Kind:      inferKind(def.ID, stem+" "+segment.body, len(choices)),
		Stem:      stem,
		Choices:   choices,
		SkillTags: inferSkillTags(def.ID, stem),
		Metadata:  map[string]interface{}{"confidence": confidence},
	}

	if answer, ok := answerMap[segment.number]; ok {
		question.AnswerKey = AnswerKey{answer}
	}

	return question, warning
}

// blueprintID derives the blueprint's identity slug from the source filename,
// falling back to a timestamp-based identity when no filename is available.
func (p *Parser) blueprintID(fileName string) string {
	if fileName == "" {
		fileName = fmt.Sprintf("exam-%d", time.Now().UnixMilli())
	}
	return slugify(fileName)
}

// blueprintTitle derives the display title from the source filename, minus a
// trailing .pdf extension.
func (p *Parser) blueprintTitle(fileName string) string {
	if fileName == "" {
		return "ACT Practice Exam"
	}
	return regexp.MustCompile(`(?i)\.pdf$`).ReplaceAllString(fileName, "")
}
