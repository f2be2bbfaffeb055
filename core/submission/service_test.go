package submission

import (
	"testing"
	"time"

	"github.com/trezcool/learnhub/core"
	"github.com/trezcool/learnhub/core/course"
	"github.com/trezcool/learnhub/core/user"
	"github.com/trezcool/learnhub/tests"
)

func newTestServices(t *testing.T) (*Service, *user.Service, *course.Service) {
	t.Helper()
	store := testutil.NewStore(t)
	userSvc := user.NewService(store, nil)
	courseSvc := course.NewService(store, nil)
	return NewService(store, userSvc, courseSvc), userSvc, courseSvc
}

func TestService_Submit(t *testing.T) {
	defer func() { nowFunc = time.Now }()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return now }

	svc, _, _ := newTestServices(t)

	sub, err := svc.Submit("u2", "a1", "my essay")
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if sub.ID == "" {
		t.Error("Submit() did not assign an id")
	}
	if sub.Graded() {
		t.Error("Submit() must start ungraded")
	}
	if !sub.Date.Equal(now) {
		t.Errorf("Submit() date = %v, want %v", sub.Date, now)
	}

	t.Run("resubmission replaces and resets", func(t *testing.T) {
		graded, err := svc.Grade(sub.ID, GradeInput{Grade: 90, Feedback: "Well done"})
		if err != nil {
			t.Fatalf("Grade() failed: %v", err)
		}
		if !graded.Graded() || graded.Grade.Int != 90 {
			t.Fatalf("Grade() = %v, want grade 90", graded)
		}

		fresh, err := svc.Submit("u2", "a1", "my revised essay")
		if err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
		if fresh.ID == sub.ID {
			t.Error("resubmission must mint a fresh id")
		}
		if fresh.Graded() || fresh.Feedback != "" {
			t.Errorf("resubmission kept grading state: %v", fresh)
		}

		subs, err := svc.ListForUser("u2")
		if err != nil {
			t.Fatalf("ListForUser() failed: %v", err)
		}
		if len(subs) != 1 {
			t.Fatalf("ListForUser() length = %d, want 1", len(subs))
		}
		if subs[0].Content != "my revised essay" {
			t.Errorf("surviving content = %q, want the resubmission", subs[0].Content)
		}
	})

	t.Run("other pairs are untouched", func(t *testing.T) {
		if _, err := svc.Submit("u2", "a2", "other work"); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
		if _, err := svc.Submit("u3", "a1", "someone else"); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
		subs, err := svc.ListForUser("u2")
		if err != nil {
			t.Fatalf("ListForUser() failed: %v", err)
		}
		if len(subs) != 2 {
			t.Errorf("ListForUser() length = %d, want 2", len(subs))
		}
	})
}

func TestService_Grade(t *testing.T) {
	svc, _, _ := newTestServices(t)
	sub, err := svc.Submit("u2", "a1", "my essay")
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	tests := []struct {
		name           string
		id             string
		gi             GradeInput
		wantErr        error
		wantValidation bool
	}{
		{name: "below range", id: sub.ID, gi: GradeInput{Grade: -1}, wantValidation: true},
		{name: "above range", id: sub.ID, gi: GradeInput{Grade: 101}, wantValidation: true},
		{name: "unknown submission", id: "nope", gi: GradeInput{Grade: 50}, wantErr: ErrNotFound},
		{name: "zero is a valid grade", id: sub.ID, gi: GradeInput{Grade: 0}},
		{name: "ok", id: sub.ID, gi: GradeInput{Grade: 85, Feedback: "Good work"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Grade(tt.id, tt.gi)
			if tt.wantValidation {
				if !core.IsValidationError(err) {
					t.Fatalf("Grade() error = %v, want a ValidationError", err)
				}
				return
			}
			if err != tt.wantErr {
				t.Fatalf("Grade() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !got.Graded() || got.Grade.Int != tt.gi.Grade || got.Feedback != tt.gi.Feedback {
				t.Errorf("Grade() = %v, want grade %d with feedback %q", got, tt.gi.Grade, tt.gi.Feedback)
			}
		})
	}
}

func TestService_ListForCourse(t *testing.T) {
	svc, userSvc, courseSvc := newTestServices(t)

	student := testutil.CreateUser(t, userSvc, "Jane Doe", "jane@learn.hub", "secret1", user.RoleStudent)
	crs := testutil.CreateCourse(t, courseSvc, "Intro to Go", "Programming", "u1",
		testutil.TextItem("Syllabus", "Read this first."),
		testutil.AssignmentItem("Essay", "Write 500 words."),
		testutil.AssignmentItem("Project", "Build something."),
	)
	essay, project := crs.Content[1], crs.Content[2]

	if _, err := svc.Submit(student.ID, essay.ID, "my essay"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if _, err := svc.Submit(student.ID, project.ID, "my project"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	// a submission against another course's item stays out of the listing
	if _, err := svc.Submit(student.ID, "foreign-item", "stray"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	subs, err := svc.ListForCourse(crs.ID)
	if err != nil {
		t.Fatalf("ListForCourse() failed: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("ListForCourse() length = %d, want 2", len(subs))
	}
	for _, cs := range subs {
		if cs.Student.ID != student.ID || cs.Student.Name != student.Name {
			t.Errorf("joined student = %v, want %v", cs.Student, student)
		}
	}
	if subs[0].AssignmentTitle != "Essay" || subs[1].AssignmentTitle != "Project" {
		t.Errorf("assignment titles = (%q, %q), want (Essay, Project)", subs[0].AssignmentTitle, subs[1].AssignmentTitle)
	}

	t.Run("deleted assignment drops off", func(t *testing.T) {
		if err := courseSvc.DeleteContent(crs.ID, project.ID); err != nil {
			t.Fatalf("DeleteContent() failed: %v", err)
		}
		subs, err := svc.ListForCourse(crs.ID)
		if err != nil {
			t.Fatalf("ListForCourse() failed: %v", err)
		}
		if len(subs) != 1 || subs[0].AssignmentTitle != "Essay" {
			t.Errorf("ListForCourse() = %v, want only the surviving assignment", subs)
		}
	})

	t.Run("deleted course yields empty", func(t *testing.T) {
		if err := courseSvc.Delete(crs.ID); err != nil {
			t.Fatalf("Delete() failed: %v", err)
		}
		subs, err := svc.ListForCourse(crs.ID)
		if err != nil {
			t.Fatalf("ListForCourse() failed: %v", err)
		}
		if len(subs) != 0 {
			t.Errorf("ListForCourse() length = %d, want 0", len(subs))
		}
	})
}
