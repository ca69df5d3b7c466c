package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/itchan-dev/threadboard/shared/domain"
	internal_errors "github.com/itchan-dev/threadboard/shared/errors"
)

// postFields declares the rules for a create-post submission.
type postFields struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// PostValidator gates every write to a thread store.
// It is stateless after construction and safe for concurrent use.
type PostValidator struct {
	validate *validator.Validate
}

func NewPostValidator() *PostValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their json name so messages line up with form inputs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &PostValidator{validate: v}
}

// Normalize trims surrounding whitespace and leaves everything else as typed.
// Markup is kept verbatim; templates escape it on output.
func (pv *PostValidator) Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Validate checks a raw submission. On success the returned FieldErrors is nil.
// On failure it holds one message per violated field and the ValidatedPost is zero.
func (pv *PostValidator) Validate(raw domain.PostSubmission) (domain.ValidatedPost, internal_errors.FieldErrors) {
	fields := postFields{
		Title:   pv.Normalize(raw.Title),
		Content: pv.Normalize(raw.Content),
	}

	err := pv.validate.Struct(fields)
	if err == nil {
		return domain.ValidatedPost{Title: fields.Title, Content: fields.Content}, nil
	}

	fieldErrors := make(internal_errors.FieldErrors)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrors[fe.Field()] = message(fe)
		}
	}
	if len(fieldErrors) == 0 {
		// validator only fails this way on a non-struct argument
		fieldErrors[FieldTitle] = err.Error()
	}
	return domain.ValidatedPost{}, fieldErrors
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
