package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"console-tools/internal/domain"
	"console-tools/internal/repository"
)

const (
	MinGrade = 0.0
	MaxGrade = 100.0
)

// StudentStore is the storage the grade book appends to and reports from.
type StudentStore interface {
	Append(ctx context.Context, rec domain.StudentRecord) error
	List(ctx context.Context) ([]domain.StudentRecord, error)
	Len() int
	Capacity() int
}

type GradeBook struct {
	store StudentStore
}

func NewGradeBook(store StudentStore) (*GradeBook, error) {
	if store == nil {
		return nil, errors.New("usecase: student store must not be nil")
	}
	return &GradeBook{store: store}, nil
}

func (g *GradeBook) Len() int      { return g.store.Len() }
func (g *GradeBook) Capacity() int { return g.store.Capacity() }

// Full reports whether another student can no longer be added.
func (g *GradeBook) Full() bool {
	return g.store.Len() >= g.store.Capacity()
}

// AddStudent stores name with the mean of grades and returns the new record.
// On any failure the record count is unchanged.
func (g *GradeBook) AddStudent(ctx context.Context, name string, grades []float64) (domain.StudentRecord, error) {
	if g.Full() {
		return domain.StudentRecord{}, newError(ErrorValidation, "capacity_reached", nil)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.StudentRecord{}, newError(ErrorValidation, "empty_name", nil)
	}
	if len(grades) == 0 {
		return domain.StudentRecord{}, newError(ErrorValidation, "no_grades", nil)
	}

	var total float64
	for i, grade := range grades {
		if err := ValidateGrade(grade); err != nil {
			return domain.StudentRecord{}, newError(ErrorValidation, "grade_out_of_range", fmt.Errorf("grade %d: %w", i+1, err))
		}
		total += grade
	}
	avg := total / float64(len(grades))

	rec := domain.StudentRecord{
		ID:      newUUID(),
		Name:    name,
		Average: avg,
		Letter:  LetterGrade(avg),
	}
	if err := g.store.Append(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrFull) {
			return domain.StudentRecord{}, newError(ErrorValidation, "capacity_reached", err)
		}
		return domain.StudentRecord{}, newError(ErrorInternal, "store_append_error", err)
	}
	slog.Debug("student added", "student_id", rec.ID, "average", rec.Average, "letter", rec.Letter)
	return rec, nil
}

// Report summarizes all records in insertion order. It fails with
// ErrorEmptyState when nothing has been added yet.
func (g *GradeBook) Report(ctx context.Context) (domain.Report, error) {
	recs, err := g.store.List(ctx)
	if err != nil {
		return domain.Report{}, newError(ErrorInternal, "store_list_error", err)
	}
	if len(recs) == 0 {
		return domain.Report{}, newError(ErrorEmptyState, "no_records", nil)
	}

	rows := make([]domain.ReportRow, 0, len(recs))
	var total float64
	for i, rec := range recs {
		rows = append(rows, domain.ReportRow{
			Index:   i + 1,
			Name:    rec.Name,
			Average: rec.Average,
			Letter:  LetterGrade(rec.Average),
		})
		total += rec.Average
	}
	return domain.Report{
		Rows:         rows,
		ClassAverage: total / float64(len(recs)),
		Total:        len(recs),
	}, nil
}

// ValidateGrade accepts finite values in [MinGrade, MaxGrade].
func ValidateGrade(grade float64) error {
	if math.IsNaN(grade) || math.IsInf(grade, 0) {
		return fmt.Errorf("grade %v is not a number", grade)
	}
	if grade < MinGrade || grade > MaxGrade {
		return fmt.Errorf("grade %v outside [%v, %v]", grade, MinGrade, MaxGrade)
	}
	return nil
}

// LetterGrade maps an average onto A-F. Each band includes its lower bound.
func LetterGrade(average float64) string {
	switch {
	case average >= 90:
		return "A"
	case average >= 80:
		return "B"
	case average >= 70:
		return "C"
	case average >= 60:
		return "D"
	default:
		return "F"
	}
}

var newUUID = func() string {
	return uuid.NewString()
}
