package ingest

import "testing"

func TestExtractAnswerKeyMap(t *testing.T) {
	text := "English Test\n1. Which choice is best?\nAnswer Key\n1. B\n2. F\n3. Yes\n4. 45"

	answers := extractAnswerKeyMap(text)

	expected := map[int]string{1: "B", 2: "F", 3: "Yes", 4: "45"}
	if len(answers) != len(expected) {
		t.Fatalf("Expected %d answers, got %d: %v", len(expected), len(answers), answers)
	}
	for number, token := range expected {
		if answers[number] != token {
			t.Errorf("Expected answer %q for question %d, got %q", token, number, answers[number])
		}
	}
}

func TestExtractAnswerKeyMapMarkerVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "answer key heading", text: "filler\nANSWER KEY\n7. C"},
		{name: "spaced heading", text: "filler\nAnswer  Key\n7. C"},
		{name: "key to the test heading", text: "filler\nKey to the Test\n7. C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := extractAnswerKeyMap(tt.text)
			if answers[7] != "C" {
				t.Errorf("Expected answer C for question 7, got %q", answers[7])
			}
		})
	}
}

func TestExtractAnswerKeyMapLastMatchWins(t *testing.T) {
	text := "Answer Key\n1. A\n2. B\nAnswer Key (corrected)\n1. C"

	answers := extractAnswerKeyMap(text)

	if answers[1] != "C" {
		t.Errorf("Expected later entry to win for question 1, got %q", answers[1])
	}
	if answers[2] != "B" {
		t.Errorf("Expected answer B for question 2, got %q", answers[2])
	}
}

func TestExtractAnswerKeyMapNoMarkerScansWholeDocument(t *testing.T) {
	// Without a heading the entire document is treated as the window.
	text := "1. B\n2. G"

	answers := extractAnswerKeyMap(text)

	if answers[1] != "B" || answers[2] != "G" {
		t.Errorf("Expected whole-document scan to find both entries, got %v", answers)
	}
}

func TestExtractAnswerKeyMapEmptyText(t *testing.T) {
	answers := extractAnswerKeyMap("")
	if len(answers) != 0 {
		t.Errorf("Expected no answers for empty text, got %v", answers)
	}
}
