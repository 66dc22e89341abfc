// Package validation holds the advisory checks run on a quote form. Nothing here
// blocks a submission; callers decide what to do with the findings.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"cpq_quote/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// FieldError names one invalid form field by its JSON key.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})

	mustRegister(v, "fefco", oneOf(entities.FefcoCodes()))
	mustRegister(v, "cardboard_type", oneOf(entities.CardboardTypes))
	mustRegister(v, "cardboard_grade", oneOf(entities.CardboardGrades))
	mustRegister(v, "print_option", oneOf(entities.PrintOptions))
	v.RegisterStructValidation(gradeRequiredForCorrugated, entities.QuoteForm{})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

func oneOf(allowed []string) validator.Func {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}

func gradeRequiredForCorrugated(sl validator.StructLevel) {
	form := sl.Current().Interface().(entities.QuoteForm)
	if form.CardboardType == entities.CardboardThreeLayer && form.CardboardGrade == "" {
		sl.ReportError(form.CardboardGrade, "cardboard_grade", "CardboardGrade", "required_for_type", form.CardboardType)
	}
}

// ValidateForm returns every problem found in the form, unit price included.
// An empty result means the form is complete.
func ValidateForm(form entities.QuoteForm) []FieldError {
	var out []FieldError
	if err := validate.Struct(form); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				out = append(out, FieldError{Field: fe.Field(), Message: validationMessage(fe)})
			}
		} else {
			out = append(out, FieldError{Field: "form", Message: err.Error()})
		}
	}

	if res := ValidateUnitPrice(form.UnitPrice); !res.IsValid {
		out = append(out, FieldError{Field: "unit_price", Message: res.Error})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_for_type":
		return fmt.Sprintf("is required for %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "fefco", "cardboard_type", "cardboard_grade", "print_option":
		return "is not a known option"
	}
	return "is invalid"
}
