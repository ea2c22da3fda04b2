package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	extractor   services.DocumentExtractorService
	maxFileSize int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	extractor services.DocumentExtractorService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalysisRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_text is required",
		})
	}

	if req.JobPosting == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_posting is required",
		})
	}

	result, err := h.analyzer.Analyze(c.Context(), req.ResumeText, req.JobPosting, req.ModelID)
	if err != nil {
		return respondAnalysisError(c, err)
	}

	return c.JSON(result)
}

// HandleAnalyzeFile handles POST /analyze/file. The resume arrives as a
// multipart upload; unsupported extensions are rejected before any upstream
// call is made.
func (h *AnalyzeHandler) HandleAnalyzeFile(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	jobPosting := c.FormValue("job_posting")
	if jobPosting == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_posting is required",
		})
	}

	resumeText, err := h.extractor.ExtractText(file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unsupported file format. Only PDF or DOCX allowed.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract resume text: %v", err),
		})
	}

	result, err := h.analyzer.Analyze(c.Context(), resumeText, jobPosting, c.FormValue("model_id"))
	if err != nil {
		return respondAnalysisError(c, err)
	}

	return c.JSON(result)
}

// respondAnalysisError maps upstream failures to a 502 payload. The
// suggest_model_change hint is advisory only; a content error additionally
// carries the raw reply for diagnostics.
func respondAnalysisError(c *fiber.Ctx, err error) error {
	payload := models.ErrorResponse{
		Message: err.Error(),
	}

	var transportErr *services.TransportError
	var protocolErr *services.ProtocolError
	var contentErr *services.ContentError

	switch {
	case errors.As(err, &contentErr):
		payload.SuggestModelChange = true
		payload.Raw = contentErr.Raw
	case errors.As(err, &transportErr), errors.As(err, &protocolErr):
		payload.SuggestModelChange = true
	}

	return c.Status(fiber.StatusBadGateway).JSON(payload)
}
