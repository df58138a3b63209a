package http

import (
	"encoding/json"
	"errors"
	"io"

	"resume-maker/internal/model"
	"resume-maker/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type Handler struct {
	processor *usecase.Processor
	store     *usecase.FileStore
	log       zerolog.Logger
}

func NewHandler(p *usecase.Processor, store *usecase.FileStore, log zerolog.Logger) *Handler {
	return &Handler{processor: p, store: store, log: log}
}

// GenerateResume handles POST /api/generate-resume.
func (h *Handler) GenerateResume(c *fiber.Ctx) error {
	body := c.Body()
	if err := model.ValidateInput(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input model.ResumeInput
	if err := json.Unmarshal(body, &input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	filename, err := h.processor.Generate(c.UserContext(), input)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
		}
		h.log.Error().Err(err).Msg("resume generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"pdfFilename": filename})
}

// DownloadResume handles GET /download-resume/:filename. The file is claimed
// for a single download and deleted once the response is on its way.
func (h *Handler) DownloadResume(c *fiber.Ctx) error {
	filename := c.Params("filename")

	dl, err := h.store.OpenDownload(filename)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDownloadInProgress):
			return c.Status(fiber.StatusTooManyRequests).SendString("Download already in progress")
		case errors.Is(err, usecase.ErrResumeNotFound):
			return c.Status(fiber.StatusNotFound).SendString("Resume not found")
		default:
			return c.Status(fiber.StatusInternalServerError).SendString("Download failed")
		}
	}
	defer dl.Close()

	data, err := io.ReadAll(dl)
	if err != nil {
		h.log.Error().Err(err).Str("file", dl.Name).Msg("file stream error")
		return c.Status(fiber.StatusInternalServerError).SendString("Error streaming file")
	}

	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, private")
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+dl.Name+`"`)
	return c.Send(data)
}
