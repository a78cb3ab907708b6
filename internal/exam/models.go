package exam

import "github.com/mind-engage/mindengage-grades/internal/grading"

type Exam struct {
	ID        string             `json:"id" yaml:"id"`
	Title     string             `json:"title" yaml:"title"`
	Questions []grading.Question `json:"questions" yaml:"questions"`
}

// Attempt is one learner's set of responses to an exam.
type Attempt struct {
	ID        string         `json:"id" yaml:"id"`
	ExamID    string         `json:"exam_id" yaml:"exam_id"`
	UserID    string         `json:"user_id" yaml:"user_id"`
	Responses map[string]any `json:"responses" yaml:"responses"` // questionID -> response payload
	// ManualPoints holds teacher-entered points for questions that need review.
	ManualPoints map[string]float64 `json:"manual_points,omitempty" yaml:"manual_points,omitempty"`
}

// Report is the graded view of an attempt.
type Report struct {
	ExamID      string               `json:"exam_id"`
	AttemptID   string               `json:"attempt_id"`
	UserID      string               `json:"user_id,omitempty"`
	Results     []grading.Result     `json:"results"`
	Submissions []grading.Submission `json:"submissions"`
	Percentage  int                  `json:"percentage"`
	Band        grading.ColorBand    `json:"band"`
	Pending     int                  `json:"pending"` // questions still awaiting manual review
}
