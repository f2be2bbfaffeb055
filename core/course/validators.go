package course

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/learnhub/core"
)

var (
	contentPayloadTag  = "contentpayload"
	contentPayloadText = "content payload does not match the content type"

	correctOptionTag  = "correctoption"
	correctOptionText = "correct option index is out of range"
)

func init() {
	// register validators
	core.Validate.RegisterStructValidation(contentItemStructValidation, NewContentItem{})
	core.RegisterCustomTranslation(contentPayloadTag, contentPayloadText)

	core.Validate.RegisterStructValidation(questionStructValidation, Question{})
	core.RegisterCustomTranslation(correctOptionTag, correctOptionText)
}

// contentItemStructValidation checks that exactly the payload tagged by Type
// is provided on a NewContentItem.
func contentItemStructValidation(sl validator.StructLevel) {
	nci, ok := sl.Current().Interface().(NewContentItem)
	if !ok {
		return
	}

	payloads := map[string]bool{
		TypeVideo:      nci.Video != nil,
		TypeText:       nci.Text != nil,
		TypeAssignment: nci.Assignment != nil,
		TypePDF:        nci.PDF != nil,
		TypeQuiz:       nci.Quiz != nil,
	}
	for typ, set := range payloads {
		if typ == nci.Type {
			if !set {
				sl.ReportError(nci.Type, "type", "Type", contentPayloadTag, "")
			}
		} else if set {
			sl.ReportError(nci.Type, "type", "Type", contentPayloadTag, "")
		}
	}
}

// questionStructValidation checks that a quiz question's answer key points at
// one of its options.
func questionStructValidation(sl validator.StructLevel) {
	q, ok := sl.Current().Interface().(Question)
	if !ok {
		return
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		sl.ReportError(q.CorrectOption, "correct", "CorrectOption", correctOptionTag, "")
	}
}
