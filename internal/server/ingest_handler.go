package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/catalystprep/exam-ingest/internal/ingest"
)

const pdfContentType = "application/pdf"

// handleIngest accepts a multipart PDF upload and returns the parsed
// blueprint payload. Parser errors never surface as bare 500s; the response
// carries the sample exam as a fallback so clients always have a renderable
// blueprint.
func (s *Server) handleIngest(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A PDF file is required."})
		return
	}

	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && ct != pdfContentType {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"message": "Unsupported file type. Please upload a PDF."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.log.Error("failed to open upload", "file", fileHeader.Filename, "error", err)
		s.respondFallback(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.config.MaxFileSize+1))
	if err != nil {
		s.log.Error("failed to read upload", "file", fileHeader.Filename, "error", err)
		s.respondFallback(c)
		return
	}
	if int64(len(data)) > s.config.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Uploaded file exceeds the size limit."})
		return
	}

	result, err := s.ingestService.IngestBytes(ingest.IngestBytesRequest{
		Data:     data,
		FileName: fileHeader.Filename,
	})
	if err != nil {
		s.log.Error("pdf ingestion failed", "file", fileHeader.Filename, "error", err)
		s.respondFallback(c)
		return
	}

	s.log.Info("pdf ingested",
		"file", fileHeader.Filename,
		"ingestId", result.IngestID,
		"pages", result.Pages,
		"questions", result.Payload.Exam.QuestionCount(),
		"confidence", result.Payload.Exam.Metadata.IngestionConfidence,
	)

	c.JSON(http.StatusOK, result.Payload)
}

func (s *Server) respondFallback(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"message":  "Parser encountered an error. Loading fallback sample exam.",
		"fallback": ingest.FallbackPayload(),
	})
}
