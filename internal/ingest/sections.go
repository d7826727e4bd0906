package ingest

import "regexp"

// sectionDefinition describes one known section identity and the alias
// phrases used to locate its heading in extracted text
type sectionDefinition struct {
	ID               string
	Name             string
	Aliases          []string
	TimeLimitMinutes int
}

// sectionCatalog returns the fixed, ordered catalog of known sections.
// Catalog order only controls alias lookup; the emitted section order is the
// positional order of the headings in the document.
func sectionCatalog() []sectionDefinition {
	return []sectionDefinition{
		{ID: "english", Name: "English", Aliases: []string{"english test", "english section"}, TimeLimitMinutes: 45},
		{ID: "math", Name: "Math", Aliases: []string{"math test", "mathematics"}, TimeLimitMinutes: 60},
		{ID: "reading", Name: "Reading", Aliases: []string{"reading test", "reading passage"}, TimeLimitMinutes: 35},
		{ID: "science", Name: "Science", Aliases: []string{"science test", "science reasoning"}, TimeLimitMinutes: 35},
		{ID: "writing", Name: "Writing", Aliases: []string{"writing test", "writing prompt"}, TimeLimitMinutes: 35},
	}
}

// sectionBlock is a contiguous slice of the document attributed to one section
type sectionBlock struct {
	def     sectionDefinition
	start   int
	content string
}

// segmentSections finds the first occurrence of each catalog section's
// aliases in the normalized text, drops entries with no match, orders the
// survivors by position, and slices the document into contiguous blocks.
// Each block spans from its own heading to the next surviving heading, or to
// end of document for the last. Aliases are matched case-insensitively
// against the original text so every position is a valid byte offset in it;
// lowercasing a copy would shift offsets whenever a rune changes byte length
// under case conversion.
func segmentSections(text string) []sectionBlock {
	var blocks []sectionBlock
	for _, def := range sectionCatalog() {
		position := -1
		for _, alias := range def.Aliases {
			matcher := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(alias))
			if loc := matcher.FindStringIndex(text); loc != nil && (position < 0 || loc[0] < position) {
				position = loc[0]
			}
		}
		if position < 0 {
			continue
		}
		blocks = append(blocks, sectionBlock{def: def, start: position})
	}

	// Insertion sort by start position; the catalog is tiny.
	for i := 1; i < len(blocks); i++ {
		for j := i; j > 0 && blocks[j].start < blocks[j-1].start; j-- {
			blocks[j], blocks[j-1] = blocks[j-1], blocks[j]
		}
	}

	for i := range blocks {
		end := len(text)
		if i+1 < len(blocks) {
			end = blocks[i+1].start
		}
		blocks[i].content = text[blocks[i].start:end]
	}

	return blocks
}
