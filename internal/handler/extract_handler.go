package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"extractor-web/internal/config"
	"extractor-web/internal/models"
	"extractor-web/internal/repository"
	"extractor-web/internal/service"
	"extractor-web/internal/utils"
)

const (
	exportFilename = "extracted_rows_with_isin.xlsx"
	xlsxMIMEType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExtractHandler struct {
	sessionRepo    *repository.SessionRepository
	extractService *service.ExtractService
	cfg            *config.Config
}

func NewExtractHandler(
	sessionRepo *repository.SessionRepository,
	extractService *service.ExtractService,
	cfg *config.Config,
) *ExtractHandler {
	return &ExtractHandler{
		sessionRepo:    sessionRepo,
		extractService: extractService,
		cfg:            cfg,
	}
}

// UploadWorkbooks accepts the main workbook plus the optional lookup
// workbook, aggregates the entity names and opens an extract session.
func (h *ExtractHandler) UploadWorkbooks(c *fiber.Ctx) error {
	file, err := c.FormFile("workbook")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Workbook file is required", err)
	}
	if err := h.validateUpload(file); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	sessionCode := fmt.Sprintf("EXTRACT-%s", uuid.New().String()[:8])

	workbookPath := filepath.Join(h.cfg.UploadPath, fmt.Sprintf("%s%s", sessionCode, filepath.Ext(file.Filename)))
	if err := c.SaveFile(file, workbookPath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save workbook", err)
	}

	session := &models.ExtractSession{
		Code:         sessionCode,
		Filename:     file.Filename,
		WorkbookPath: workbookPath,
		CreatedAt:    time.Now(),
	}

	if lookupFile, err := c.FormFile("lookup"); err == nil {
		if err := h.validateUpload(lookupFile); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		lookupPath := filepath.Join(h.cfg.UploadPath, fmt.Sprintf("%s-lookup%s", sessionCode, filepath.Ext(lookupFile.Filename)))
		if err := c.SaveFile(lookupFile, lookupPath); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save lookup workbook", err)
		}
		session.LookupFilename = lookupFile.Filename
		session.LookupPath = lookupPath
	}

	summary, err := h.extractService.CollectNames(workbookPath)
	if err != nil {
		var schemaErr *service.SchemaError
		if errors.As(err, &schemaErr) {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Workbook is missing a required column", err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to parse workbook", err)
	}
	session.SheetNames = summary.SheetNames
	session.EntityNames = summary.EntityNames

	h.sessionRepo.Create(session)

	return utils.SuccessResponse(c, "Workbook uploaded successfully", session)
}

// GetSession returns the session detail, including the selectable names.
func (h *ExtractHandler) GetSession(c *fiber.Ctx) error {
	session, ok := h.sessionRepo.Get(c.Params("code"))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Extract session not found or expired", nil)
	}
	return utils.SuccessResponse(c, "Session retrieved successfully", session)
}

type exportRequest struct {
	Names []string `json:"names"`
}

// ExportExtract runs the pipeline for the selected names and streams the
// formatted workbook, or answers with an informational notice when nothing
// matched.
func (h *ExtractHandler) ExportExtract(c *fiber.Ctx) error {
	session, ok := h.sessionRepo.Get(c.Params("code"))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Extract session not found or expired", nil)
	}

	var req exportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if len(req.Names) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Select at least one name", nil)
	}

	output, err := h.extractService.Extract(session.WorkbookPath, session.LookupPath, req.Names)
	if err != nil {
		if errors.Is(err, service.ErrNoMatchingRows) {
			return utils.SuccessResponse(c, "No matching rows found with positive Units.", fiber.Map{
				"rows": 0,
			})
		}
		var schemaErr *service.SchemaError
		if errors.As(err, &schemaErr) {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Workbook is missing a required column", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to extract rows", err)
	}

	c.Set(fiber.HeaderContentType, xlsxMIMEType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, exportFilename))
	return c.Send(output)
}

func (h *ExtractHandler) validateUpload(file *multipart.FileHeader) error {
	ext := filepath.Ext(file.Filename)
	if ext != ".xlsx" && ext != ".xls" {
		return fmt.Errorf("only Excel files (.xlsx, .xls) are allowed")
	}
	if file.Size > int64(h.cfg.UploadMaxSize) {
		return fmt.Errorf("file size exceeds maximum limit")
	}
	return nil
}
