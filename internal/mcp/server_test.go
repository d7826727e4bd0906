package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/catalystprep/exam-ingest/internal/config"
	"github.com/catalystprep/exam-ingest/internal/ingest"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Mode:          config.ModeStdio,
		Host:          "127.0.0.1",
		Port:          8080,
		ExamDirectory: dir,
		Version:       "1.0.0",
		ServerName:    "exam-ingest-test",
		LogLevel:      "info",
		MaxFileSize:   1024 * 1024,
	}
}

func TestNewServer(t *testing.T) {
	cfg := testConfig(t.TempDir())
	ingestService := ingest.NewService(cfg.MaxFileSize)

	server, err := NewServer(cfg, ingestService)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server == nil {
		t.Fatal("server should not be nil")
	}
	if server.config != cfg {
		t.Error("server config not set correctly")
	}
	if server.ingestService != ingestService {
		t.Error("server ingestService not set correctly")
	}
	if server.mcpServer == nil {
		t.Error("mcpServer should be initialized")
	}
}

func TestNewServerNilService(t *testing.T) {
	if _, err := NewServer(testConfig(t.TempDir()), nil); err == nil {
		t.Error("expected error for nil ingest service")
	}
}

func TestServer_HandleExamValidateFile(t *testing.T) {
	tempDir := t.TempDir()

	// Not a real PDF, so validation should report failure.
	testFile := filepath.Join(tempDir, "test.pdf")
	if err := os.WriteFile(testFile, make([]byte, 1024), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	cfg := testConfig(tempDir)
	server, err := NewServer(cfg, ingest.NewService(cfg.MaxFileSize))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": testFile,
			},
		},
	}

	result, err := server.handleExamValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "PDF validation failed") {
		t.Errorf("expected validation to fail, got: %s", resultText)
	}
}

func TestServer_HandleExamValidateFileMissingPath(t *testing.T) {
	cfg := testConfig(t.TempDir())
	server, err := NewServer(cfg, ingest.NewService(cfg.MaxFileSize))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	result, err := server.handleExamValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected an error result for a missing path argument")
	}
}

func TestServer_HandleExamIngestFileInvalidPDF(t *testing.T) {
	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "broken.pdf")
	if err := os.WriteFile(testFile, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	cfg := testConfig(tempDir)
	server, err := NewServer(cfg, ingest.NewService(cfg.MaxFileSize))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": testFile,
			},
		},
	}

	result, err := server.handleExamIngestFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected an error result for an unreadable PDF")
	}
}

func TestServer_HandleExamServerInfo(t *testing.T) {
	cfg := testConfig(t.TempDir())
	server, err := NewServer(cfg, ingest.NewService(cfg.MaxFileSize))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	result, err := server.handleExamServerInfo(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	for _, tool := range []string{"exam_ingest_file", "exam_validate_file", "exam_server_info"} {
		if !strings.Contains(resultText, tool) {
			t.Errorf("expected server info to mention %s, got: %s", tool, resultText)
		}
	}
	if !strings.Contains(resultText, cfg.ServerName) {
		t.Errorf("expected server info to mention the server name, got: %s", resultText)
	}
}

// extractTextFromResult pulls the first text content block out of a tool result
func extractTextFromResult(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			return textContent.Text
		}
		if textContentPtr, ok := content.(*mcp.TextContent); ok {
			return textContentPtr.Text
		}
	}

	return ""
}
