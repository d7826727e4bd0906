package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractResult is what the text-extraction collaborator hands to the
// ingestion pipeline: the document's plain text plus whatever identifying
// metadata the info dictionary carried.
type ExtractResult struct {
	Text   string
	Pages  int
	Title  string
	Author string
}

// Extractor pulls plain text and basic metadata out of PDF documents. It is
// a black box from the pipeline's perspective: the pipeline only ever sees
// the ExtractResult.
type Extractor struct {
	maxFileSize int64
	maxTextSize int
}

// NewExtractor creates a new PDF text extractor with the specified size limit
func NewExtractor(maxFileSize int64) *Extractor {
	return &Extractor{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ExtractFile extracts text and metadata from a PDF on disk
func (e *Extractor) ExtractFile(path string) (*ExtractResult, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if fileInfo.Size() > e.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), e.maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	return e.ExtractBytes(data)
}

// ExtractBytes extracts text and metadata from an in-memory PDF buffer.
// An unreadable document is an error; a readable document with no text is
// not an error, since the caller's pipeline handles the empty-text case as a
// degraded result.
func (e *Extractor) ExtractBytes(data []byte) (*ExtractResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("document buffer is empty")
	}

	if int64(len(data)) > e.maxFileSize {
		return nil, fmt.Errorf("document too large: %d bytes (max: %d bytes)",
			len(data), e.maxFileSize)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	result := &ExtractResult{
		Text:  e.extractText(reader),
		Pages: reader.NumPage(),
	}
	e.extractMetadata(reader, result)

	return result, nil
}

// extractText concatenates per-page plain text. Individual page failures are
// tolerated so one corrupt page does not lose the rest of the document.
func (e *Extractor) extractText(reader *pdf.Reader) string {
	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if totalLength+len(content) > e.maxTextSize {
			remaining := e.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		totalLength += len(content)

		if pageNum < reader.NumPage() {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// extractMetadata reads Title and Author from the document info dictionary.
// The ledongthuc value API panics on some malformed documents, so the whole
// lookup runs behind a recover.
func (e *Extractor) extractMetadata(reader *pdf.Reader, result *ExtractResult) {
	defer func() {
		// Metadata is optional; keep whatever was set before the panic.
		_ = recover()
	}()

	trailer := reader.Trailer()
	if trailer.IsNull() {
		return
	}

	info := trailer.Key("Info")
	if info.IsNull() {
		return
	}

	if title := info.Key("Title"); !title.IsNull() {
		result.Title = strings.TrimSpace(title.String())
	}

	if author := info.Key("Author"); !author.IsNull() {
		result.Author = strings.TrimSpace(author.String())
	}
}
