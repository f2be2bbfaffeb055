package submission

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/learnhub/core"
	"github.com/trezcool/learnhub/core/course"
	"github.com/trezcool/learnhub/core/user"
)

// StoreKey is the persisted collection name.
const StoreKey = "lms_submissions_v2"

// deletedAssignmentTitle is shown when the assignment item no longer exists.
const deletedAssignmentTitle = "Deleted Assignment"

var (
	// errors
	ErrNotFound = core.NewNotFoundError("submission not found")

	nowFunc = time.Now // mockable
)

type Service struct {
	store   core.Store
	users   *user.Service
	courses *course.Service
}

func NewService(store core.Store, userSvc *user.Service, courseSvc *course.Service) *Service {
	return &Service{store: store, users: userSvc, courses: courseSvc}
}

func (svc *Service) queryAll() ([]Submission, error) {
	var submissions []Submission
	if err := svc.store.Load(StoreKey, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// Submit records the user's work for an assignment. Any prior submission for
// the same (user, assignment) pair is replaced by a fresh ungraded one; a
// previous grade is discarded.
func (svc *Service) Submit(userID, assignmentID, content string) (Submission, error) {
	submissions, err := svc.queryAll()
	if err != nil {
		return Submission{}, err
	}
	kept := make([]Submission, 0, len(submissions)+1)
	for _, sub := range submissions {
		if sub.UserID == userID && sub.AssignmentID == assignmentID {
			continue
		}
		kept = append(kept, sub)
	}
	sub := Submission{
		ID:           uuid.New().String(),
		UserID:       userID,
		AssignmentID: assignmentID,
		Content:      content,
		Grade:        null.Int{},
		Feedback:     "",
		Date:         nowFunc().UTC(),
	}
	kept = append(kept, sub)
	if err := svc.store.Save(StoreKey, kept); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// Grade applies a score and feedback to a Submission. The grade is terminal
// until a fresh submission resets the pair.
func (svc *Service) Grade(submissionID string, gi GradeInput) (Submission, error) {
	if err := gi.Validate(); err != nil {
		return Submission{}, err
	}

	submissions, err := svc.queryAll()
	if err != nil {
		return Submission{}, err
	}
	for i, sub := range submissions {
		if sub.ID != submissionID {
			continue
		}
		sub.Grade = null.IntFrom(gi.Grade)
		sub.Feedback = gi.Feedback
		submissions[i] = sub
		if err := svc.store.Save(StoreKey, submissions); err != nil {
			return Submission{}, err
		}
		return sub, nil
	}
	return Submission{}, ErrNotFound
}

// ListForCourse returns every submission against the course's content items,
// joined with the submitting student and the assignment title. A submission
// whose item survives only under a non-assignment type gets a placeholder
// title; submissions for a deleted course yield an empty result.
func (svc *Service) ListForCourse(courseID string) ([]CourseSubmission, error) {
	crs, err := svc.courses.Get(courseID)
	if err != nil {
		if core.IsNotFound(err) {
			return []CourseSubmission{}, nil
		}
		return nil, err
	}

	itemIDs := make(map[string]bool, len(crs.Content))
	titles := make(map[string]string)
	for _, item := range crs.Content {
		itemIDs[item.ID] = true
		if item.Type == course.TypeAssignment {
			titles[item.ID] = item.Title
		}
	}

	submissions, err := svc.queryAll()
	if err != nil {
		return nil, err
	}
	users, err := svc.users.QueryAll()
	if err != nil {
		return nil, err
	}
	usersByID := make(map[string]user.User, len(users))
	for _, usr := range users {
		usersByID[usr.ID] = usr
	}

	out := make([]CourseSubmission, 0, len(submissions))
	for _, sub := range submissions {
		if !itemIDs[sub.AssignmentID] {
			continue
		}
		title, ok := titles[sub.AssignmentID]
		if !ok {
			title = deletedAssignmentTitle
		}
		out = append(out, CourseSubmission{
			Submission:      sub,
			Student:         usersByID[sub.UserID],
			AssignmentTitle: title,
		})
	}
	return out, nil
}

// ListForUser returns all of the user's submissions.
func (svc *Service) ListForUser(userID string) ([]Submission, error) {
	submissions, err := svc.queryAll()
	if err != nil {
		return nil, err
	}
	out := make([]Submission, 0, len(submissions))
	for _, sub := range submissions {
		if sub.UserID == userID {
			out = append(out, sub)
		}
	}
	return out, nil
}
