package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	pipeline       services.Pipeline
	storageService services.StorageService
	maxFileSize    int64
}

func NewAnalyzeHandler(
	pipeline services.Pipeline,
	storageService services.StorageService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		pipeline:       pipeline,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze: one uploaded PDF resume plus a target
// role, one full pipeline run, no state kept between requests.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "please upload a PDF resume in the 'resume' field",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	targetRole := ExtractTargetRole(c.FormValue("target_role"))
	if targetRole == "" {
		targetRole = ExtractTargetRole(c.FormValue("message"))
	}
	if targetRole == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "please specify the target role, e.g. \"Senior Backend Engineer\"",
		})
	}

	filePath, err := h.storageService.SaveUpload(resumeFile)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume: %v", err),
		})
	}
	defer func() {
		if err := h.storageService.RemoveUpload(filePath); err != nil {
			log.Printf("⚠️  Failed to remove cached upload %s: %v", filePath, err)
		}
	}()

	analysis, err := h.pipeline.AnalyzeResume(c.Context(), filePath, targetRole)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.AnalyzeResponse{
		ID:         uuid.New().String(),
		TargetRole: targetRole,
		Analysis:   analysis,
		Report:     services.FormatMarkdownReport(analysis, targetRole),
	})
}

func statusForError(err error) int {
	var extractionErr *models.ExtractionError
	if errors.As(err, &extractionErr) {
		return fiber.StatusUnprocessableEntity
	}

	var analysisErr *models.AnalysisError
	if errors.As(err, &analysisErr) {
		return fiber.StatusBadGateway
	}

	return fiber.StatusInternalServerError
}
