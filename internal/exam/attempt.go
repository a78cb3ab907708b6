package exam

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/mind-engage/mindengage-grades/internal/grading"
)

var (
	ErrUnknownQuestion = errors.New("response for unknown question")
	ErrExamMismatch    = errors.New("attempt belongs to a different exam")
)

// GradeAttempt auto-grades every question of ex against the attempt's
// responses. Unanswered or null responses count as zero points, as do
// responses the grader rejects; the rejection is kept in the result feedback.
// Questions that need review stay ungraded unless the attempt carries manual
// points for them.
func GradeAttempt(ctx context.Context, g grading.Grader, ex Exam, at Attempt) (Report, error) {
	if at.ExamID != "" && ex.ID != "" && at.ExamID != ex.ID {
		return Report{}, fmt.Errorf("%w: attempt %s is for %s, not %s", ErrExamMismatch, at.ID, at.ExamID, ex.ID)
	}
	known := lo.SliceToMap(ex.Questions, func(q grading.Question) (string, struct{}) { return q.ID, struct{}{} })
	for qid := range at.Responses {
		if _, ok := known[qid]; !ok {
			return Report{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, qid)
		}
	}
	for qid := range at.ManualPoints {
		if _, ok := known[qid]; !ok {
			return Report{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, qid)
		}
	}

	rep := Report{
		ExamID:      ex.ID,
		AttemptID:   at.ID,
		UserID:      at.UserID,
		Results:     make([]grading.Result, 0, len(ex.Questions)),
		Submissions: make([]grading.Submission, 0, len(ex.Questions)),
	}
	for _, q := range ex.Questions {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		res, err := gradeOne(ctx, g, q, at.Responses[q.ID])
		if err != nil {
			return Report{}, err
		}
		if pts, ok := at.ManualPoints[q.ID]; ok {
			res.Points = max(0, min(pts, q.Points))
			res.NeedsManual = false
			res.Feedback = append(res.Feedback, "manually graded")
		}
		if res.NeedsManual {
			rep.Pending++
		}
		rep.Results = append(rep.Results, res)
		rep.Submissions = append(rep.Submissions, res.Submission())
	}

	rep.Percentage = grading.OverallGrade(rep.Submissions)
	rep.Band = grading.GradeColor(float64(rep.Percentage))
	slog.DebugContext(ctx, "graded attempt",
		"attempt", at.ID, "exam", ex.ID, "percentage", rep.Percentage, "band", rep.Band, "pending", rep.Pending)
	return rep, nil
}

// gradeOne only fails when ctx is done.
func gradeOne(ctx context.Context, g grading.Grader, q grading.Question, resp any) (grading.Result, error) {
	if resp == nil {
		return grading.Result{QuestionID: q.ID, MaxPoints: q.Points, Feedback: []string{"no response"}}, nil
	}
	res, err := g.Grade(ctx, q, resp)
	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return grading.Result{}, err
	}
	slog.WarnContext(ctx, "response not gradable", "question", q.ID, "err", err)
	return grading.Result{QuestionID: q.ID, MaxPoints: q.Points, Feedback: []string{"not graded: " + err.Error()}}, nil
}
