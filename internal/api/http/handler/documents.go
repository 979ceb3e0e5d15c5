package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/helenb/wagtail-torchbox/internal/service/documents"
)

type DocumentsHandler struct {
	svc documents.Service
}

func NewDocumentsHandler(svc documents.Service) *DocumentsHandler {
	return &DocumentsHandler{svc: svc}
}

// GET /api/v1/documents/:id
func (h *DocumentsHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	d, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapDocumentError(c, err)
	}

	return ok(c, fiber.Map{
		"id":    d.ID,
		"title": d.Title,
	})
}

// GET /api/v1/documents/:id/download
func (h *DocumentsHandler) Download(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	url, err := h.svc.DownloadURL(c.Context(), id)
	if err != nil {
		return mapDocumentError(c, err)
	}

	return c.Redirect().Status(fiber.StatusTemporaryRedirect).To(url)
}

func mapDocumentError(c fiber.Ctx, err error) error {
	if errors.Is(err, documents.ErrDocumentNotFound) {
		return notFound(c, err.Error())
	}
	return internalError(c)
}
