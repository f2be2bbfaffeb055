package enrollment

import (
	"github.com/trezcool/learnhub/core/course"
)

// Enrollment links one User to one Course and tracks progress through its
// content. Progress is derived; CompletedItems is the source of truth.
type Enrollment struct {
	ID             string   `json:"id"`
	UserID         string   `json:"userId"`
	CourseID       string   `json:"courseId"`
	Progress       int      `json:"progress"`
	CompletedItems []string `json:"completedItems"`
}

// Completed reports whether the given content item has been recorded.
func (e *Enrollment) Completed(itemID string) bool {
	for _, id := range e.CompletedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// EnrolledCourse joins an Enrollment with its Course for display.
type EnrolledCourse struct {
	Enrollment
	Course course.Course `json:"course"`
}
