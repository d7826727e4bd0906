package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/catalystprep/exam-ingest/internal/config"
	"github.com/catalystprep/exam-ingest/internal/ingest"
)

// Server represents the MCP server instance
type Server struct {
	config        *config.Config
	ingestService *ingest.Service
	mcpServer     *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, ingestService *ingest.Service) (*Server, error) {
	if ingestService == nil {
		return nil, fmt.Errorf("ingestService cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:        cfg,
		ingestService: ingestService,
		mcpServer:     mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	examIngestFileTool := mcp.NewTool(
		"exam_ingest_file",
		mcp.WithDescription("Parse an ACT-style practice exam PDF into a structured blueprint"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the exam PDF file"),
		),
	)
	s.mcpServer.AddTool(examIngestFileTool, s.handleExamIngestFile)

	examValidateFileTool := mcp.NewTool(
		"exam_validate_file",
		mcp.WithDescription("Validate if a file is a readable PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the exam PDF file"),
		),
	)
	s.mcpServer.AddTool(examValidateFileTool, s.handleExamValidateFile)

	examServerInfoTool := mcp.NewTool(
		"exam_server_info",
		mcp.WithDescription("Get server information, available tools, and usage guidance"),
	)
	s.mcpServer.AddTool(examServerInfoTool, s.handleExamServerInfo)
}

// Handler functions
func (s *Server) handleExamIngestFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.ingestService.IngestFile(ingest.IngestFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := s.formatIngestResult(path, result)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExamValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if err := s.ingestService.ValidateFile(path); err != nil {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", path, err.Error())
	} else {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", path)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExamServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.formatServerInfo()), nil
}

// Formatting methods
func (s *Server) formatIngestResult(path string, result *ingest.IngestResult) string {
	exam := result.Payload.Exam

	text := fmt.Sprintf("Successfully ingested exam PDF: %s\n", path)
	text += fmt.Sprintf("Ingest ID: %s\n", result.IngestID)
	text += fmt.Sprintf("Pages: %d\n", result.Pages)
	text += fmt.Sprintf("Title: %s\n", exam.Title)
	text += fmt.Sprintf("Sections: %d\n", len(exam.Sections))
	text += fmt.Sprintf("Questions: %d\n", exam.QuestionCount())
	text += fmt.Sprintf("Confidence: %.2f\n", exam.Metadata.IngestionConfidence)

	if len(result.Payload.Warnings) > 0 {
		text += "\nWarnings:\n"
		for _, w := range result.Payload.Warnings {
			text += fmt.Sprintf("  [%s] %s\n", w.Severity, w.Message)
		}
	}

	blueprint, err := json.MarshalIndent(exam, "", "  ")
	if err != nil {
		text += fmt.Sprintf("\nFailed to render blueprint JSON: %s\n", err.Error())
		return text
	}

	text += "\nBlueprint:\n"
	text += string(blueprint)
	text += "\n"

	return text
}

func (s *Server) formatServerInfo() string {
	text := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Exam Directory: %s\n", s.config.ExamDirectory)
	text += fmt.Sprintf("Max File Size: %d MB\n\n", s.config.MaxFileSize/(1024*1024))

	text += "Available Tools:\n"
	text += "\n• exam_ingest_file\n"
	text += "  Description: Parse an ACT-style practice exam PDF into a structured blueprint\n"
	text += "  Parameters: path (required) - full path to the exam PDF file\n"
	text += "\n• exam_validate_file\n"
	text += "  Description: Validate if a file is a readable PDF\n"
	text += "  Parameters: path (required) - full path to the exam PDF file\n"
	text += "\n• exam_server_info\n"
	text += "  Description: Get server information, available tools, and usage guidance\n"
	text += "  Parameters: none\n"

	text += "\nWorkflow: validate the PDF with exam_validate_file, then ingest it with "
	text += "exam_ingest_file to receive the structured blueprint plus any parser warnings."

	return text
}

// Run serves the MCP tools over stdio until the transport closes
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting exam ingest MCP server in stdio mode")
		log.Printf("Exam directory: %s", s.config.ExamDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
