package submission

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/learnhub/core"
	"github.com/trezcool/learnhub/core/user"
)

// Submission is a user's delivered work for one assignment content item.
// Grade is null until the submission has been graded; re-submission resets it.
type Submission struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	AssignmentID string    `json:"assignmentId"`
	Content      string    `json:"content"`
	Grade        null.Int  `json:"grade"`
	Feedback     string    `json:"feedback"`
	Date         time.Time `json:"date"` // UTC
}

// Graded reports whether the submission has received a grade.
func (s *Submission) Graded() bool {
	return s.Grade.Valid
}

// GradeInput contains the score and feedback applied to a Submission.
type GradeInput struct {
	Grade    int    `json:"grade" validate:"min=0,max=100"`
	Feedback string `json:"feedback"`
}

func (gi *GradeInput) Validate() error {
	return core.TranslateValidationErrors(core.Validate.Struct(gi))
}

// CourseSubmission joins a Submission with its student and assignment title
// for the grading view.
type CourseSubmission struct {
	Submission
	Student         user.User `json:"student"`
	AssignmentTitle string    `json:"assignmentTitle"`
}
