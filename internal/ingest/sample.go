package ingest

// SampleExam returns the hand-authored fallback blueprint served when
// ingestion fails entirely. It is rebuilt on every call so callers can
// mutate their copy freely.
func SampleExam() *ExamBlueprint {
	return &ExamBlueprint{
		ID:       "act-sample-diagnostic",
		Title:    "ACT Sample Diagnostic",
		Synopsis: "A short diagnostic form used when an uploaded exam could not be ingested.",
		Metadata: ExamBlueprintMetadata{
			ExamFamily:          ExamFamilyACT,
			Version:             "sample-1",
			IngestionConfidence: 1.0,
			CreatedAt:           "2024-01-01T00:00:00Z",
			Notes:               "Static sample blueprint; not derived from an uploaded document.",
		},
		Sections: []ExamSection{
			{
				ID:               "english",
				Name:             "English",
				Description:      "Usage and rhetorical skills sampler",
				Order:            1,
				TimeLimitMinutes: 45,
				Instructions:     sectionInstructions,
				Questions: []ExamQuestion{
					{
						ID:    "english-1",
						Order: 1,
						Kind:  KindMultipleChoice,
						Stem:  "The committee have reached its decision. Which revision best corrects the sentence?",
						Choices: []QuestionChoice{
							{ID: "english-1-A-0", Label: "A", Text: "NO CHANGE"},
							{ID: "english-1-B-1", Label: "B", Text: "has reached its decision"},
							{ID: "english-1-C-2", Label: "C", Text: "have reached their decision"},
							{ID: "english-1-D-3", Label: "D", Text: "reaching its decision"},
						},
						AnswerKey: AnswerKey{"B"},
						SkillTags: []string{"Grammar::Subject-Verb Agreement"},
						Metadata:  map[string]interface{}{"confidence": 1.0},
					},
				},
			},
			{
				ID:                "math",
				Name:              "Math",
				Description:       "Algebra sampler",
				Order:             2,
				TimeLimitMinutes:  60,
				Instructions:      sectionInstructions,
				CalculatorAllowed: true,
				Questions: []ExamQuestion{
					{
						ID:        "math-1",
						Order:     1,
						Kind:      KindGridIn,
						Stem:      "If 3x + 5 = 20, enter your answer for x.",
						AnswerKey: AnswerKey{"5"},
						SkillTags: []string{"Algebra::Linear Equations"},
						Metadata:  map[string]interface{}{"confidence": 1.0},
					},
				},
			},
		},
	}
}

// FallbackPayload wraps the sample exam in a payload carrying a single error
// warning, for hosting layers that must return something renderable after an
// internal failure.
func FallbackPayload() *ParsedExamPayload {
	return &ParsedExamPayload{
		Exam: SampleExam(),
		Warnings: []ParsedExamWarning{
			{
				Message:  "An error occurred during parsing. Sample data returned instead.",
				Severity: SeverityError,
			},
		},
	}
}
