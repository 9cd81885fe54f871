package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/gymlogger/internal/service"
)

type BackupHandler struct {
	backup *service.BackupService
}

func NewBackupHandler(backup *service.BackupService) *BackupHandler {
	return &BackupHandler{backup: backup}
}

// Export POST /v1/backup/export
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	result, err := h.backup.Export(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// PlanRestore POST /v1/backup/restore/plan
// Validates the candidate document and returns a summary without writing
// anything, so the UI can ask the user to confirm first.
func (h *BackupHandler) PlanRestore(c *fiber.Ctx) error {
	plan, err := h.backup.PlanRestore(c.Body())
	if err != nil {
		if errors.Is(err, service.ErrInvalidBackup) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

// CommitRestore POST /v1/backup/restore/commit
// Re-validates the document and merges it in, reporting per-day counts.
func (h *BackupHandler) CommitRestore(c *fiber.Ctx) error {
	result, err := h.backup.Restore(c.UserContext(), c.Body())
	if err != nil {
		if errors.Is(err, service.ErrInvalidBackup) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}
