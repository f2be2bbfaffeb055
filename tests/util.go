package testutil

import (
	"testing"

	"github.com/trezcool/learnhub/core/course"
	"github.com/trezcool/learnhub/core/enrollment"
	"github.com/trezcool/learnhub/core/user"
	"github.com/trezcool/learnhub/storage/kv/inmemdb"
)

// NewStore returns a fresh in-memory store.
func NewStore(t *testing.T) *inmemdb.Store {
	t.Helper()
	return inmemdb.NewStore()
}

func CreateUser(t *testing.T, svc *user.Service, name, email, pwd, role string) user.User {
	t.Helper()
	usr, err := svc.Register(user.NewUser{Name: name, Email: email, Password: pwd, Role: role})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(
	t *testing.T,
	svc *course.Service,
	title, category, instructorID string,
	items ...course.NewContentItem,
) course.Course {
	t.Helper()
	crs, err := svc.Create(course.NewCourse{Title: title, Category: category, InstructorID: instructorID})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	for _, item := range items {
		if _, err := svc.AddContent(crs.ID, item); err != nil {
			t.Fatalf("CreateCourse() failed adding content: %v", err)
		}
	}
	crs, err = svc.Get(crs.ID)
	if err != nil {
		t.Fatalf("CreateCourse() failed reloading course: %v", err)
	}
	return crs
}

func Enroll(t *testing.T, svc *enrollment.Service, userID, courseID string) enrollment.Enrollment {
	t.Helper()
	enr, err := svc.Enroll(userID, courseID)
	if err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}
	return enr
}

// Content item input shorthands

func TextItem(title, body string) course.NewContentItem {
	return course.NewContentItem{Title: title, Type: course.TypeText, Text: &course.TextContent{Body: body}}
}

func VideoItem(title, url, duration string) course.NewContentItem {
	return course.NewContentItem{Title: title, Type: course.TypeVideo, Video: &course.VideoContent{URL: url, Duration: duration}}
}

func AssignmentItem(title, description string) course.NewContentItem {
	return course.NewContentItem{Title: title, Type: course.TypeAssignment, Assignment: &course.AssignmentContent{Description: description}}
}

func QuizItem(title string, questions ...course.Question) course.NewContentItem {
	return course.NewContentItem{Title: title, Type: course.TypeQuiz, Quiz: &course.QuizContent{Questions: questions}}
}
