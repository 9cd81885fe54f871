package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/gymlogger/internal/service"
	"github.com/mansoorceksport/gymlogger/internal/validation"
)

type HistoryHandler struct {
	history *service.HistoryService
}

func NewHistoryHandler(history *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// Sets GET /v1/history/sets?name=
// Every set ever logged under the exercise name, most recent date first.
func (h *HistoryHandler) Sets(c *fiber.Ctx) error {
	name, ok := validation.ValidateExerciseName(c.Query("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid exercise name"})
	}

	sets, err := h.history.AllSetsForExercise(c.UserContext(), name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sets)
}

// CheckPR GET /v1/history/pr-check?name=&weight=&reps=&rir=
// Reports whether the prospective set would beat the best historical set for
// the name. The caller stores the flag on the set it then saves; it is never
// recomputed afterwards.
func (h *HistoryHandler) CheckPR(c *fiber.Ctx) error {
	name, ok := validation.ValidateExerciseName(c.Query("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid exercise name"})
	}
	weight, ok := validation.ValidateWeight(c.Query("weight"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid weight"})
	}
	reps, ok := validation.ValidateReps(c.Query("reps"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid reps"})
	}
	rir := 0
	if q := c.Query("rir"); q != "" {
		rir, ok = validation.ValidateRIR(q)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid rir"})
		}
	}

	isPR, err := h.history.CheckPR(c.UserContext(), name, weight, reps, rir)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"name": name, "is_pr": isPR})
}

// Estimate1RM GET /v1/history/estimate-1rm?weight=&reps=&rir=
func (h *HistoryHandler) Estimate1RM(c *fiber.Ctx) error {
	weight, ok := validation.ValidateWeight(c.Query("weight"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid weight"})
	}
	reps, ok := validation.ValidateReps(c.Query("reps"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid reps"})
	}
	rir := 0
	if q := c.Query("rir"); q != "" {
		rir, ok = validation.ValidateRIR(q)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid rir"})
		}
	}

	return c.JSON(fiber.Map{"estimated_1rm": service.Estimate1RM(weight, reps, rir)})
}
