package core

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	alphaSpaceTag   = "alphaspace"
	alphaSpaceText  = "only letters and spaces are allowed"
	alphaSpaceRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)

	orgEmailTag = "orgemail"

	requiredTag  = "required"
	requiredText = "this field is required"

	errInvalidInput = errors.New("invalid input")
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(alphaSpaceTag, alphaSpaceValidation)
	RegisterCustomTranslation(alphaSpaceTag, alphaSpaceText)

	orgEmailText := fmt.Sprintf("only %s emails are allowed", Conf.GetString("orgEmailDomain"))
	_ = Validate.RegisterValidation(orgEmailTag, orgEmailValidation)
	RegisterCustomTranslation(orgEmailTag, orgEmailText)

	RegisterCustomTranslation(requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// TranslateValidationErrors converts raw validator errors into a ValidationError
// carrying one translated FieldError per offending field. Any other error is
// returned as is.
func TranslateValidationErrors(err error) error {
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(Translator)})
	}
	return NewValidationError(errInvalidInput, flds...)
}

// Custom Global Validators

// alphaSpaceValidation only allows letters and spaces.
func alphaSpaceValidation(fl validator.FieldLevel) bool {
	return alphaSpaceRegex.MatchString(fl.Field().String())
}

// orgEmailValidation only allows emails on the organization domain.
func orgEmailValidation(fl validator.FieldLevel) bool {
	return strings.HasSuffix(fl.Field().String(), Conf.GetString("orgEmailDomain"))
}
