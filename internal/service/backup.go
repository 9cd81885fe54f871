package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/mansoorceksport/gymlogger/internal/domain"
)

const BackupVersion = "1.0.0"

var ErrInvalidBackup = errors.New("invalid backup document")

var backupDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// BackupDocument is the portable backup envelope, bit-exact with the
// exported file format.
type BackupDocument struct {
	Version      string            `json:"version"`
	ExportDate   string            `json:"exportDate"`
	WorkoutCount int               `json:"workoutCount"`
	Workouts     []*domain.Workout `json:"workouts"`
}

// ExportResult describes a completed export.
type ExportResult struct {
	Path         string `json:"path"`
	WorkoutCount int    `json:"workout_count"`
	SharedURL    string `json:"shared_url,omitempty"`
}

// RestorePlan is the validated first phase of a restore. It summarizes the
// document without touching storage so the calling layer can own user
// confirmation before committing.
type RestorePlan struct {
	Version      string   `json:"version"`
	ExportDate   string   `json:"export_date"`
	WorkoutCount int      `json:"workout_count"`
	Dates        []string `json:"dates"`

	doc *BackupDocument
}

// RestoreResult reports per-day outcomes of a committed restore.
type RestoreResult struct {
	Restored int `json:"restored"`
	Failed   int `json:"failed"`
}

// BackupUploader pushes an export file to an external share target.
type BackupUploader interface {
	Upload(ctx context.Context, file []byte, filename string, contentType string) (string, error)
}

// BackupService exports the full store to a portable JSON document and
// restores such documents with a non-destructive merge. The safety contract
// of restore: pre-existing data is never deleted on any failure path.
type BackupService struct {
	repo     domain.WorkoutRepository
	dir      string
	uploader BackupUploader // optional, nil disables sharing
}

func NewBackupService(repo domain.WorkoutRepository, dir string, uploader BackupUploader) *BackupService {
	return &BackupService{repo: repo, dir: dir, uploader: uploader}
}

// Export serializes every workout into a timestamped backup file in the
// configured directory. The file content is written in one shot, so a
// failed export never leaves a partially written document behind.
func (s *BackupService) Export(ctx context.Context) (*ExportResult, error) {
	workouts, err := s.repo.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect workouts for export: %w", err)
	}

	now := time.Now().UTC()
	doc := BackupDocument{
		Version:      BackupVersion,
		ExportDate:   now.Format("2006-01-02T15:04:05.000Z"),
		WorkoutCount: len(workouts),
		Workouts:     workouts,
	}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backup: %w", err)
	}

	filename := fmt.Sprintf("gym-logger-backup-%s.json", now.Format("2006-01-02T15-04-05"))
	path := filepath.Join(s.dir, filename)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write backup file: %w", err)
	}

	result := &ExportResult{Path: path, WorkoutCount: len(workouts)}

	if s.uploader != nil {
		url, err := s.uploader.Upload(ctx, data, filename, "application/json")
		if err != nil {
			// Sharing is best-effort; the local file is the export of record.
			log.Printf("Warning: failed to upload backup %s: %v", filename, err)
		} else {
			result.SharedURL = url
		}
	}

	return result, nil
}

// PlanRestore parses and structurally validates a candidate backup document
// without performing any storage writes. Any structural violation rejects
// the document wholesale.
func (s *BackupService) PlanRestore(data []byte) (*RestorePlan, error) {
	// Presence probe: distinguish missing envelope fields from zero values.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidBackup, err)
	}
	for _, field := range []string{"version", "exportDate", "workoutCount", "workouts"} {
		if _, ok := probe[field]; !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrInvalidBackup, field)
		}
	}

	var doc BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	if err := validateBackupDocument(&doc); err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(doc.Workouts))
	for _, w := range doc.Workouts {
		dates = append(dates, w.Date)
	}

	return &RestorePlan{
		Version:      doc.Version,
		ExportDate:   doc.ExportDate,
		WorkoutCount: doc.WorkoutCount,
		Dates:        dates,
		doc:          &doc,
	}, nil
}

func validateBackupDocument(doc *BackupDocument) error {
	if doc.Version == "" {
		return fmt.Errorf("%w: empty version", ErrInvalidBackup)
	}
	if doc.ExportDate == "" {
		return fmt.Errorf("%w: empty exportDate", ErrInvalidBackup)
	}
	if doc.Workouts == nil {
		return fmt.Errorf("%w: workouts is not an array", ErrInvalidBackup)
	}

	for _, workout := range doc.Workouts {
		if workout == nil || workout.Date == "" {
			return fmt.Errorf("%w: workout without date", ErrInvalidBackup)
		}
		if workout.Exercises == nil {
			return fmt.Errorf("%w: workout %s has no exercises array", ErrInvalidBackup, workout.Date)
		}
		for _, ex := range workout.Exercises {
			if ex.ID == "" {
				return fmt.Errorf("%w: exercise without id in workout %s", ErrInvalidBackup, workout.Date)
			}
			if ex.Name == "" {
				return fmt.Errorf("%w: exercise without name in workout %s", ErrInvalidBackup, workout.Date)
			}
			if ex.Sets == nil {
				return fmt.Errorf("%w: exercise %q has no sets array", ErrInvalidBackup, ex.Name)
			}
			for _, set := range ex.Sets {
				if set.Weight < 0 {
					return fmt.Errorf("%w: negative weight in exercise %q", ErrInvalidBackup, ex.Name)
				}
				if set.Reps < 1 {
					return fmt.Errorf("%w: reps below 1 in exercise %q", ErrInvalidBackup, ex.Name)
				}
				if set.RIR != nil && *set.RIR < 0 {
					return fmt.Errorf("%w: negative rir in exercise %q", ErrInvalidBackup, ex.Name)
				}
			}
		}
	}
	return nil
}

// CommitRestore merges a validated plan into storage, one day at a time.
// For a date that already has a workout, incoming exercises replace existing
// ones sharing their ID and are appended otherwise; exercises present only
// locally are preserved untouched. A failed day is counted and skipped
// without aborting the remaining days or rolling back completed ones.
func (s *BackupService) CommitRestore(ctx context.Context, plan *RestorePlan) (*RestoreResult, error) {
	if plan == nil || plan.doc == nil {
		return nil, fmt.Errorf("%w: nil restore plan", ErrInvalidBackup)
	}

	result := &RestoreResult{}
	for _, incoming := range plan.doc.Workouts {
		if !backupDateRegex.MatchString(incoming.Date) {
			log.Printf("Invalid date format in backup: %s", incoming.Date)
			result.Failed++
			continue
		}

		merged := &domain.Workout{
			Date:      incoming.Date,
			Exercises: incoming.Exercises,
		}

		if existing := s.repo.Load(ctx, incoming.Date); existing != nil {
			mergedExercises := append([]domain.Exercise{}, existing.Exercises...)
			for _, newExercise := range incoming.Exercises {
				replaced := false
				for i := range mergedExercises {
					if mergedExercises[i].ID == newExercise.ID {
						mergedExercises[i] = newExercise
						replaced = true
						break
					}
				}
				if !replaced {
					mergedExercises = append(mergedExercises, newExercise)
				}
			}
			merged.Exercises = mergedExercises
		}

		if err := s.repo.Save(ctx, merged); err != nil {
			log.Printf("Error restoring workout %s: %v", incoming.Date, err)
			result.Failed++
			continue
		}
		result.Restored++
	}

	return result, nil
}

// Restore is PlanRestore followed immediately by CommitRestore, for callers
// that already obtained confirmation.
func (s *BackupService) Restore(ctx context.Context, data []byte) (*RestoreResult, error) {
	plan, err := s.PlanRestore(data)
	if err != nil {
		return nil, err
	}
	return s.CommitRestore(ctx, plan)
}
