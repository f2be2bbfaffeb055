package course

import (
	"github.com/trezcool/learnhub/core"
)

// Content item types
const (
	TypeVideo      = "video"
	TypeText       = "text"
	TypeAssignment = "assignment"
	TypePDF        = "pdf"
	TypeQuiz       = "quiz"
)

type Course struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	InstructorID string        `json:"instructorId"`
	Content      []ContentItem `json:"content"`
}

type (
	// ContentItem is one unit of course material. Type tags which payload is
	// set; exactly one of the payload pointers is non-nil. Display order is
	// the slice order within Course.Content.
	ContentItem struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Type  string `json:"type"`

		Video      *VideoContent      `json:"video,omitempty"`
		Text       *TextContent       `json:"text,omitempty"`
		Assignment *AssignmentContent `json:"assignment,omitempty"`
		PDF        *PDFContent        `json:"pdf,omitempty"`
		Quiz       *QuizContent       `json:"quiz,omitempty"`
	}

	VideoContent struct {
		URL      string `json:"url" validate:"required,url"`
		Duration string `json:"duration"`
	}

	TextContent struct {
		Body string `json:"body" validate:"required"`
	}

	AssignmentContent struct {
		Description string `json:"description" validate:"required"`
	}

	PDFContent struct {
		URL string `json:"url" validate:"required,url"`
	}

	QuizContent struct {
		Questions []Question `json:"questions" validate:"required,min=1,dive"`
	}

	Question struct {
		Text          string   `json:"text" validate:"required"`
		Options       []string `json:"options" validate:"required,min=2,dive,required"`
		CorrectOption int      `json:"correct" validate:"min=0"`
	}
)

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" validate:"required"`
	InstructorID string `json:"instructorId" validate:"required"`
}

func (nc *NewCourse) Validate() error {
	nc.Title = core.CleanString(nc.Title)
	nc.Category = core.CleanString(nc.Category)
	return core.TranslateValidationErrors(core.Validate.Struct(nc))
}

// NewContentItem contains information needed to append a ContentItem to a
// Course. The payload matching Type must be provided.
type NewContentItem struct {
	Title string `json:"title" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=video text assignment pdf quiz"`

	Video      *VideoContent      `json:"video,omitempty"`
	Text       *TextContent       `json:"text,omitempty"`
	Assignment *AssignmentContent `json:"assignment,omitempty"`
	PDF        *PDFContent        `json:"pdf,omitempty"`
	Quiz       *QuizContent       `json:"quiz,omitempty"`
}

func (nci *NewContentItem) Validate() error {
	nci.Title = core.CleanString(nci.Title)
	return core.TranslateValidationErrors(core.Validate.Struct(nci))
}
