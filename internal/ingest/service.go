package ingest

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/catalystprep/exam-ingest/internal/pdf"
)

// IngestFileRequest asks for ingestion of a PDF already on disk
type IngestFileRequest struct {
	Path string `json:"path"`
}

// IngestBytesRequest asks for ingestion of an uploaded document buffer
type IngestBytesRequest struct {
	Data     []byte `json:"-"`
	FileName string `json:"fileName,omitempty"`
}

// IngestResult is the service-level envelope around a parsed payload
type IngestResult struct {
	IngestID string             `json:"ingestId"`
	Pages    int                `json:"pages"`
	Payload  *ParsedExamPayload `json:"payload"`
}

// Service orchestrates one ingestion run: validation, text extraction, and
// the parsing pipeline. It holds no per-document state, so a single Service
// serves concurrent callers without coordination.
type Service struct {
	extractor *pdf.Extractor
	validator *pdf.Validator
	parser    *Parser
}

// NewService creates a new ingestion service with the specified file size limit
func NewService(maxFileSize int64) *Service {
	return &Service{
		extractor: pdf.NewExtractor(maxFileSize),
		validator: pdf.NewValidator(maxFileSize),
		parser:    NewParser(),
	}
}

// IngestBytes runs the pipeline on an uploaded document buffer. Content-type
// screening is the uploader's responsibility; the only hard failure here is
// the extractor being unable to read the document at all. A readable document
// with no text still succeeds, as a degraded zero-section payload.
func (s *Service) IngestBytes(req IngestBytesRequest) (*IngestResult, error) {
	extracted, err := s.extractor.ExtractBytes(req.Data)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	payload := s.parser.Parse(extracted.Text, ParseOptions{
		FileName:  req.FileName,
		DocTitle:  extracted.Title,
		DocAuthor: extracted.Author,
	})

	return &IngestResult{
		IngestID: uuid.NewString(),
		Pages:    extracted.Pages,
		Payload:  payload,
	}, nil
}

// IngestFile validates and ingests a PDF from disk
func (s *Service) IngestFile(req IngestFileRequest) (*IngestResult, error) {
	if err := s.validator.ValidateFile(req.Path); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	extracted, err := s.extractor.ExtractFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	payload := s.parser.Parse(extracted.Text, ParseOptions{
		FileName:  filepath.Base(req.Path),
		DocTitle:  extracted.Title,
		DocAuthor: extracted.Author,
	})

	return &IngestResult{
		IngestID: uuid.NewString(),
		Pages:    extracted.Pages,
		Payload:  payload,
	}, nil
}

// ValidateFile reports whether a file on disk is a readable PDF
func (s *Service) ValidateFile(path string) error {
	return s.validator.ValidateFile(path)
}

// ParseText runs only the text-to-structure pipeline, bypassing PDF access.
// Useful for callers that already hold extracted text.
func (s *Service) ParseText(text, fileName string) *ParsedExamPayload {
	return s.parser.Parse(text, ParseOptions{FileName: fileName})
}
