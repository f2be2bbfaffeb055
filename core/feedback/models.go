package feedback

import (
	"time"

	"github.com/trezcool/learnhub/core"
)

// Feedback is one user's rating and comment for a course; at most one exists
// per (course, user) pair.
type Feedback struct {
	ID       string    `json:"id"`
	CourseID string    `json:"courseId"`
	UserID   string    `json:"userId"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"` // UTC
}

// NewFeedback contains information needed to submit course feedback.
type NewFeedback struct {
	CourseID string `json:"courseId" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Comment  string `json:"comment"`
}

func (nf *NewFeedback) Validate() error {
	return core.TranslateValidationErrors(core.Validate.Struct(nf))
}

// Stats is the per-rating histogram for one course. Average rating is the
// caller's concern: sum(rating*count)/Total.
type Stats struct {
	Total     int         `json:"total"`
	Histogram map[int]int `json:"histogram"` // rating (1..5) -> count
}
