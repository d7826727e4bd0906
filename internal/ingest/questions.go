package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// A question starts at a line beginning with a 1-3 digit number followed
	// by a '.' or ')' delimiter and whitespace.
	questionBoundaryPattern = `(?m)^(\d{1,3})[.)]\s+`

	// A choice starts at a line beginning with a single allowed letter
	// followed by a '.', ')' or '-' delimiter, whitespace, or end of line.
	// Requiring the terminator keeps stem lines that merely start with one of
	// these letters ("Choose the best word.") from being read as choices,
	// while a bare label whose text wraps to the next line still opens one.
	// J and F cover ACT-style skip-letter lettering on even-numbered
	// questions.
	choiceStartPattern = `(?i)^([A-HJF])(?:[).\-]|\s|$)\s*(.*)$`
)

// questionSegment is one question's raw body sliced out of a section block
type questionSegment struct {
	number int
	body   string
}

// segmentQuestions finds numbered-item boundaries in a section block and
// slices it into per-question text segments. Each segment runs from the end
// of its own boundary match to the start of the next, or to the end of the
// block for the last question.
func segmentQuestions(block string) []questionSegment {
	boundary := regexp.MustCompile(questionBoundaryPattern)
	matches := boundary.FindAllStringSubmatchIndex(block, -1)

	var segments []questionSegment
	for i, m := range matches {
		number, err := strconv.Atoi(block[m[2]:m[3]])
		if err != nil {
			// Unreachable given the digit class, but the contract is to skip
			// unparseable numbers rather than fail the section.
			continue
		}

		end := len(block)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		segments = append(segments, questionSegment{
			number: number,
			body:   strings.TrimSpace(block[m[1]:end]),
		})
	}

	return segments
}

// rawChoice is a reconstructed lettered choice before identity assignment
type rawChoice struct {
	Label string
	Text  string
}

// choiceAccumulator is the single piece of state carried through the
// line-by-line scan: the currently open choice. A nil accumulator means no
// choice is open and unmatched lines belong to the stem.
type choiceAccumulator struct {
	label string
	parts []string
}

func (a *choiceAccumulator) append(line string) {
	a.parts = append(a.parts, line)
}

func (a *choiceAccumulator) finish() rawChoice {
	return rawChoice{
		Label: a.label,
		Text:  strings.TrimSpace(strings.Join(a.parts, " ")),
	}
}

// classifyStemAndChoices walks a question body's non-empty trimmed lines in
// order. A line matching the choice-start pattern closes the previous
// in-progress choice and opens a new one; any other line is appended to the
// open choice if one exists, otherwise to the stem. Multi-line choice text is
// space-joined back into one string.
func classifyStemAndChoices(body string) (string, []rawChoice) {
	choiceStart := regexp.MustCompile(choiceStartPattern)

	var stemParts []string
	var choices []rawChoice
	var open *choiceAccumulator

	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := choiceStart.FindStringSubmatch(line); m != nil {
			if open != nil {
				choices = append(choices, open.finish())
			}
			open = &choiceAccumulator{
				label: strings.ToUpper(m[1]),
				parts: []string{strings.TrimSpace(m[2])},
			}
			continue
		}

		if open != nil {
			open.append(line)
		} else {
			stemParts = append(stemParts, line)
		}
	}

	if open != nil {
		choices = append(choices, open.finish())
	}

	stem := strings.Join(strings.Fields(strings.Join(stemParts, " ")), " ")
	return stem, choices
}
