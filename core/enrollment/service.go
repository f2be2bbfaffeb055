package enrollment

import (
	"math"

	"github.com/google/uuid"

	"github.com/trezcool/learnhub/core"
	"github.com/trezcool/learnhub/core/course"
)

// StoreKey is the persisted collection name.
const StoreKey = "lms_enrollments_v2"

var (
	// errors
	ErrAlreadyEnrolled = core.NewConflictError("already enrolled in this course")
)

type Service struct {
	store   core.Store
	courses *course.Service
}

func NewService(store core.Store, courseSvc *course.Service) *Service {
	return &Service{store: store, courses: courseSvc}
}

func (svc *Service) queryAll() ([]Enrollment, error) {
	var enrollments []Enrollment
	if err := svc.store.Load(StoreKey, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Enroll creates an Enrollment with zero progress. At most one Enrollment may
// exist per (user, course) pair.
func (svc *Service) Enroll(userID, courseID string) (Enrollment, error) {
	enrollments, err := svc.queryAll()
	if err != nil {
		return Enrollment{}, err
	}
	for _, enr := range enrollments {
		if enr.UserID == userID && enr.CourseID == courseID {
			return Enrollment{}, ErrAlreadyEnrolled
		}
	}
	enr := Enrollment{
		ID:             uuid.New().String(),
		UserID:         userID,
		CourseID:       courseID,
		Progress:       0,
		CompletedItems: []string{},
	}
	enrollments = append(enrollments, enr)
	if err := svc.store.Save(StoreKey, enrollments); err != nil {
		return Enrollment{}, err
	}
	return enr, nil
}

// Get returns the Enrollment for the (user, course) pair, or false.
func (svc *Service) Get(userID, courseID string) (Enrollment, bool, error) {
	enrollments, err := svc.queryAll()
	if err != nil {
		return Enrollment{}, false, err
	}
	for _, enr := range enrollments {
		if enr.UserID == userID && enr.CourseID == courseID {
			return enr, true, nil
		}
	}
	return Enrollment{}, false, nil
}

// RecordCompletion marks a content item as completed and recomputes progress
// against the course's current content length. It is idempotent, and a no-op
// when no matching Enrollment exists; the returned Enrollment is the zero
// value in that case.
func (svc *Service) RecordCompletion(userID, courseID, itemID string) (Enrollment, error) {
	enrollments, err := svc.queryAll()
	if err != nil {
		return Enrollment{}, err
	}
	for i, enr := range enrollments {
		if enr.UserID != userID || enr.CourseID != courseID {
			continue
		}
		if enr.Completed(itemID) {
			return enr, nil
		}
		enr.CompletedItems = append(enr.CompletedItems, itemID)
		enr.Progress = svc.progress(courseID, len(enr.CompletedItems))
		enrollments[i] = enr
		if err := svc.store.Save(StoreKey, enrollments); err != nil {
			return Enrollment{}, err
		}
		return enr, nil
	}
	return Enrollment{}, nil
}

// progress derives the percentage from the completed count and the course's
// current content length. A deleted course counts as a single-item course so
// the ratio stays defined.
func (svc *Service) progress(courseID string, completedCount int) int {
	total := 1
	if crs, err := svc.courses.Get(courseID); err == nil {
		if n := len(crs.Content); n > 0 {
			total = n
		}
	}
	return int(math.Round(100 * float64(completedCount) / float64(total)))
}

// ListForUser returns the user's enrollments joined with their courses.
// Enrollments whose course has been deleted are silently dropped.
func (svc *Service) ListForUser(userID string) ([]EnrolledCourse, error) {
	enrollments, err := svc.queryAll()
	if err != nil {
		return nil, err
	}
	enrolled := make([]EnrolledCourse, 0, len(enrollments))
	for _, enr := range enrollments {
		if enr.UserID != userID {
			continue
		}
		crs, err := svc.courses.Get(enr.CourseID)
		if err != nil {
			if core.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		enrolled = append(enrolled, EnrolledCourse{Enrollment: enr, Course: crs})
	}
	return enrolled, nil
}

// Count returns the number of active enrollments.
func (svc *Service) Count() (int, error) {
	enrollments, err := svc.queryAll()
	if err != nil {
		return 0, err
	}
	return len(enrollments), nil
}
