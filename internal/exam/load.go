package exam

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mind-engage/mindengage-grades/internal/grading"
)

// JSON documents are valid YAML, so every loader accepts either.

func LoadExam(r io.Reader) (Exam, error) {
	var e Exam
	if err := decode(r, &e); err != nil {
		return Exam{}, fmt.Errorf("load exam: %w", err)
	}
	if len(e.Questions) == 0 {
		return Exam{}, fmt.Errorf("load exam %q: no questions", e.ID)
	}
	seen := make(map[string]struct{}, len(e.Questions))
	for i, q := range e.Questions {
		if q.ID == "" {
			return Exam{}, fmt.Errorf("load exam %q: question %d has no id", e.ID, i)
		}
		if _, dup := seen[q.ID]; dup {
			return Exam{}, fmt.Errorf("load exam %q: duplicate question id %q", e.ID, q.ID)
		}
		seen[q.ID] = struct{}{}
		if q.Type == "numeric" {
			if _, err := q.NumericKey(); err != nil {
				return Exam{}, fmt.Errorf("load exam %q: %w", e.ID, err)
			}
		}
	}
	return e, nil
}

func LoadAttempt(r io.Reader) (Attempt, error) {
	var a Attempt
	if err := decode(r, &a); err != nil {
		return Attempt{}, fmt.Errorf("load attempt: %w", err)
	}
	return a, nil
}

// LoadSubmissions reads a list of {grade, pointsPossible} records; a null or
// missing grade marks the submission ungraded.
func LoadSubmissions(r io.Reader) ([]grading.Submission, error) {
	var subs []grading.Submission
	if err := decode(r, &subs); err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	return subs, nil
}

func decode(r io.Reader, v any) error {
	if err := yaml.NewDecoder(r).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
