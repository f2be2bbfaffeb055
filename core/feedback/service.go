package feedback

import (
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/learnhub/core"
)

// StoreKey is the persisted collection name.
const StoreKey = "lms_feedback_v2"

var nowFunc = time.Now // mockable

type Service struct {
	store core.Store
}

func NewService(store core.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) queryAll() ([]Feedback, error) {
	var feedbacks []Feedback
	if err := svc.store.Load(StoreKey, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// Submit upserts the user's feedback for a course: an existing entry for the
// (course, user) pair is replaced entirely, with a fresh id and date.
func (svc *Service) Submit(nf NewFeedback) (Feedback, error) {
	if err := nf.Validate(); err != nil {
		return Feedback{}, err
	}

	feedbacks, err := svc.queryAll()
	if err != nil {
		return Feedback{}, err
	}
	entry := Feedback{
		ID:       uuid.New().String(),
		CourseID: nf.CourseID,
		UserID:   nf.UserID,
		Rating:   nf.Rating,
		Comment:  nf.Comment,
		Date:     nowFunc().UTC(),
	}
	replaced := false
	for i, fb := range feedbacks {
		if fb.CourseID == nf.CourseID && fb.UserID == nf.UserID {
			feedbacks[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		feedbacks = append(feedbacks, entry)
	}
	if err := svc.store.Save(StoreKey, feedbacks); err != nil {
		return Feedback{}, err
	}
	return entry, nil
}

// ListForCourse returns all feedback entries for a course.
func (svc *Service) ListForCourse(courseID string) ([]Feedback, error) {
	feedbacks, err := svc.queryAll()
	if err != nil {
		return nil, err
	}
	out := make([]Feedback, 0, len(feedbacks))
	for _, fb := range feedbacks {
		if fb.CourseID == courseID {
			out = append(out, fb)
		}
	}
	return out, nil
}

// CourseStats returns the rating histogram and total count for a course.
func (svc *Service) CourseStats(courseID string) (Stats, error) {
	feedbacks, err := svc.ListForCourse(courseID)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{Histogram: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	for _, fb := range feedbacks {
		stats.Histogram[fb.Rating]++
		stats.Total++
	}
	return stats, nil
}
