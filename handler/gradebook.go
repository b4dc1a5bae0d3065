package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"console-tools/internal/console"
	"console-tools/internal/domain"
	"console-tools/internal/usecase"
)

const (
	choiceAdd    = 1
	choiceReport = 2
	choiceExit   = 3

	menuText = "\n-------------------------------------------\n" +
		"1. Add New Student and Grades\n" +
		"2. View Summary Report\n" +
		"3. Exit\n"
)

type GradeBook interface {
	AddStudent(ctx context.Context, name string, grades []float64) (domain.StudentRecord, error)
	Report(ctx context.Context) (domain.Report, error)
	Full() bool
	Capacity() int
}

type ReportWriter interface {
	Write(out io.Writer, rep domain.Report) error
}

// GradeBookMenu is the interactive menu around a grade book. Every invalid
// entry is answered with a message and a new prompt.
type GradeBookMenu struct {
	book   GradeBook
	report ReportWriter
	in     *console.Reader
	out    io.Writer
}

func NewGradeBookMenu(book GradeBook, report ReportWriter, in io.Reader, out io.Writer) (*GradeBookMenu, error) {
	if book == nil {
		return nil, errors.New("handler: grade book must not be nil")
	}
	if report == nil {
		return nil, errors.New("handler: report writer must not be nil")
	}
	if in == nil || out == nil {
		return nil, errors.New("handler: input and output must not be nil")
	}
	return &GradeBookMenu{
		book:   book,
		report: report,
		in:     console.NewReader(in, out),
		out:    out,
	}, nil
}

// Run shows the menu until the user exits, input ends, or ctx is done.
func (m *GradeBookMenu) Run(ctx context.Context) error {
	m.println("--- Welcome to the Student Grade Tracker ---")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printf("%s", menuText)
		choice, err := m.in.PromptInt(ctx, "Enter your choice: ")
		if err != nil {
			if errors.Is(err, console.ErrInvalidNumber) {
				m.println("\nError: Invalid input. Please enter a number for your choice.")
				continue
			}
			return ignoreEOF(err)
		}

		switch choice {
		case choiceAdd:
			err = m.addStudent(ctx)
		case choiceReport:
			err = m.showReport(ctx)
		case choiceExit:
			m.println("\nThank you for using the Grade Tracker. Goodbye!")
			return nil
		default:
			m.println("Invalid choice. Please enter 1, 2, or 3.")
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (m *GradeBookMenu) addStudent(ctx context.Context) error {
	if m.book.Full() {
		m.printf("Cannot add more students. Tracker is at maximum capacity of %d.\n", m.book.Capacity())
		return nil
	}

	m.println("\n--- Add Student ---")
	name, err := m.in.Prompt(ctx, "Enter student name: ")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		m.println("Student name cannot be empty. Returning to menu.")
		return nil
	}

	count, err := m.readGradeCount(ctx)
	if err != nil {
		return err
	}
	grades, err := m.readGrades(ctx, name, count)
	if err != nil {
		return err
	}

	rec, err := m.book.AddStudent(ctx, name, grades)
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) && ucErr.Code == usecase.ErrorValidation {
			slog.Warn("student rejected", "reason", ucErr.Reason)
			if ucErr.Reason == "capacity_reached" {
				m.printf("Cannot add more students. Tracker is at maximum capacity of %d.\n", m.book.Capacity())
			} else {
				m.printf("Could not add %s: %s.\n", name, strings.ReplaceAll(ucErr.Reason, "_", " "))
			}
			return nil
		}
		return err
	}

	m.printf("\nSuccessfully added %s. Average Score: %.2f (Grade: %s)\n", rec.Name, rec.Average, rec.Letter)
	return nil
}

func (m *GradeBookMenu) readGradeCount(ctx context.Context) (int, error) {
	for {
		n, err := m.in.PromptInt(ctx, "Enter number of subjects/grades (e.g., 3): ")
		switch {
		case errors.Is(err, console.ErrInvalidNumber):
			m.println("Invalid input. Please enter a valid whole number.")
		case err != nil:
			return 0, err
		case n <= 0:
			m.println("Number of grades must be positive.")
		default:
			return n, nil
		}
	}
}

func (m *GradeBookMenu) readGrades(ctx context.Context, name string, count int) ([]float64, error) {
	m.printf("Please enter grades (0-100) for %s:\n", name)
	var grades []float64
	for len(grades) < count {
		g, err := m.in.PromptFloat(ctx, fmt.Sprintf("Grade %d: ", len(grades)+1))
		switch {
		case errors.Is(err, console.ErrInvalidNumber):
			m.println("Invalid input. Please enter a valid number for the grade.")
			continue
		case err != nil:
			return nil, err
		}
		if usecase.ValidateGrade(g) != nil {
			m.println("Grade must be between 0 and 100. Please try again.")
			continue
		}
		grades = append(grades, g)
	}
	return grades, nil
}

func (m *GradeBookMenu) showReport(ctx context.Context) error {
	rep, err := m.book.Report(ctx)
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) && ucErr.Code == usecase.ErrorEmptyState {
			m.println("\n--- Report ---")
			m.println("No student data available. Please add students first.")
			return nil
		}
		return err
	}
	return m.report.Write(m.out, rep)
}

func (m *GradeBookMenu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func (m *GradeBookMenu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
