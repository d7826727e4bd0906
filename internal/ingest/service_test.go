package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestServiceIngestFileValidationFailure(t *testing.T) {
	service := NewService(1024 * 1024)

	testFile := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(testFile, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	result, err := service.IngestFile(IngestFileRequest{Path: testFile})
	if err == nil {
		t.Fatal("expected ingestion of a garbage file to fail")
	}
	if result != nil {
		t.Error("expected nil result on failure")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("expected a validation error, got %q", err.Error())
	}
}

func TestServiceIngestBytesUnreadableDocument(t *testing.T) {
	service := NewService(1024 * 1024)

	result, err := service.IngestBytes(IngestBytesRequest{
		Data:     []byte("not a pdf"),
		FileName: "broken.pdf",
	})
	if err == nil {
		t.Fatal("expected ingestion of unreadable bytes to fail")
	}
	if result != nil {
		t.Error("expected nil result on failure")
	}
	if !strings.Contains(err.Error(), "text extraction failed") {
		t.Errorf("expected an extraction error, got %q", err.Error())
	}
}

func TestServiceParseText(t *testing.T) {
	service := NewService(1024 * 1024)

	payload := service.ParseText("ENGLISH TEST\n1. Pick the word.\n", "d01.pdf")

	if payload == nil {
		t.Fatal("expected a payload")
	}
	if payload.Exam.QuestionCount() != 1 {
		t.Errorf("expected one question, got %d", payload.Exam.QuestionCount())
	}
	if payload.Exam.Metadata.SourcePDFName != "d01.pdf" {
		t.Errorf("expected source name to be carried, got %q", payload.Exam.Metadata.SourcePDFName)
	}
}
