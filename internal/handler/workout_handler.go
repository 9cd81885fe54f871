package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/gymlogger/internal/dateutil"
	"github.com/mansoorceksport/gymlogger/internal/domain"
	"github.com/mansoorceksport/gymlogger/internal/service"
	"github.com/mansoorceksport/gymlogger/internal/validation"
)

type WorkoutHandler struct {
	repo    domain.WorkoutRepository
	history *service.HistoryService
}

func NewWorkoutHandler(repo domain.WorkoutRepository, history *service.HistoryService) *WorkoutHandler {
	return &WorkoutHandler{
		repo:    repo,
		history: history,
	}
}

// --- Single-day CRUD ---

// GetWorkout GET /v1/workouts/:date
func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	date := c.Params("date")
	workout := h.repo.Load(c.UserContext(), date)
	if workout == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no workout for " + date})
	}
	return c.JSON(workout)
}

// SaveWorkout PUT /v1/workouts/:date
// Full replacement of the day's record; the body must carry every exercise
// the caller wants kept. Every exercise passes the same validation gates as
// SaveExercise before anything is persisted.
func (h *WorkoutHandler) SaveWorkout(c *fiber.Ctx) error {
	var req domain.Workout
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	req.Date = c.Params("date")

	for i := range req.Exercises {
		if msg, ok := validateExercise(&req.Exercises[i]); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	if err := h.repo.Save(c.UserContext(), &req); err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(req)
}

// SaveExercise POST /v1/workouts/:date/exercises
// Creates the exercise, or replaces it when the day already has one with the
// same id. Input passes the validation gates before it reaches the store.
func (h *WorkoutHandler) SaveExercise(c *fiber.Ctx) error {
	date := c.Params("date")

	var req domain.Exercise
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if msg, ok := validateExercise(&req); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	if req.ID == "" {
		req.ID = service.NewULID()
	}

	if err := h.repo.SaveExercise(c.UserContext(), date, req); err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// validateExercise runs the input gates over one exercise in place, trimming
// the name and rounding set weights. Returns a message for the first violation.
func validateExercise(ex *domain.Exercise) (string, bool) {
	name, ok := validation.ValidateExerciseName(ex.Name)
	if !ok {
		return "invalid exercise name", false
	}
	ex.Name = name

	for i, set := range ex.Sets {
		weight, ok := validation.ValidateWeightValue(set.Weight)
		if !ok {
			return "invalid weight", false
		}
		ex.Sets[i].Weight = weight
		if _, ok := validation.ValidateRepsValue(set.Reps); !ok {
			return "invalid reps", false
		}
		if set.RIR != nil {
			if _, ok := validation.ValidateRIRValue(*set.RIR); !ok {
				return "invalid rir", false
			}
		}
	}
	return "", true
}

// RemoveExercise DELETE /v1/workouts/:date/exercises/:id
func (h *WorkoutHandler) RemoveExercise(c *fiber.Ctx) error {
	if err := h.repo.RemoveExercise(c.UserContext(), c.Params("date"), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "removed"})
}

// --- Aggregate views ---

// ListWorkouts GET /v1/workouts
func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	workouts, err := h.repo.ListWorkouts(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(workouts)
}

// ListDates GET /v1/workouts/dates
// Dates come back with their calendar label ("Today", weekday, or canonical).
func (h *WorkoutHandler) ListDates(c *fiber.Ctx) error {
	dates, err := h.repo.ListDates(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	type datedLabel struct {
		Date  string `json:"date"`
		Label string `json:"label"`
	}
	out := make([]datedLabel, 0, len(dates))
	for _, date := range dates {
		out = append(out, datedLabel{Date: date, Label: dateutil.RelativeDateLabel(date)})
	}
	return c.JSON(out)
}

// LastWorkout GET /v1/workouts/:date/last
func (h *WorkoutHandler) LastWorkout(c *fiber.Ctx) error {
	date := c.Params("date")
	workout, err := h.history.LastWorkout(c.UserContext(), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if workout == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no workout before " + date})
	}
	return c.JSON(workout)
}

// Progress GET /v1/workouts/:date/progress
func (h *WorkoutHandler) Progress(c *fiber.Ctx) error {
	date := c.Params("date")
	workout := h.repo.Load(c.UserContext(), date)
	return c.JSON(fiber.Map{
		"date":     date,
		"progress": service.DailyProgress(workout),
	})
}

// CopyWorkout POST /v1/workouts/:date/copy
func (h *WorkoutHandler) CopyWorkout(c *fiber.Ctx) error {
	targetDate := c.Params("date")
	var req struct {
		SourceDate string `json:"source_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if err := h.history.CopyWorkout(c.UserContext(), req.SourceDate, targetDate); err != nil {
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "copied", "date": targetDate})
}

// --- Custom exercise library ---

// ListCustomExercises GET /v1/exercises
func (h *WorkoutHandler) ListCustomExercises(c *fiber.Ctx) error {
	exercises, err := h.repo.CustomExercises(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(exercises)
}

// CreateCustomExercise POST /v1/exercises
func (h *WorkoutHandler) CreateCustomExercise(c *fiber.Ctx) error {
	var req domain.Exercise
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	name, ok := validation.ValidateExerciseName(req.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid exercise name"})
	}
	req.Name = name
	if req.ID == "" {
		req.ID = service.NewULID()
	}
	if req.Sets == nil {
		req.Sets = []domain.Set{}
	}

	if err := h.repo.SaveCustomExercise(c.UserContext(), req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}
