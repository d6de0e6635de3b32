package palette

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	chromatoneerrors "github.com/alexisbeaulieu97/chromatone/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	colorNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// Color names become identity keys inside configuration ids, so the
		// charset excludes the ':' and ',' separators used there.
		_ = v.RegisterValidation("color_name", func(fl validator.FieldLevel) bool {
			return colorNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// validateDocument performs schema and cross-field validation on a palette
// document before model conversion.
func validateDocument(doc *Document) error {
	if doc == nil {
		return chromatoneerrors.NewValidationError("palette", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Colors))
	for i, entry := range doc.Colors {
		if prev, dup := seen[entry.Name]; dup {
			return chromatoneerrors.NewValidationError(
				fieldForColor(i, "name"),
				fmt.Sprintf("duplicate color name %q (first declared at colors[%d])", entry.Name, prev),
				nil,
			)
		}
		seen[entry.Name] = i
	}

	return nil
}

// convertValidationError normalizes validator errors into palette validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return chromatoneerrors.NewValidationError(field, msg, err)
	}

	return chromatoneerrors.NewValidationError("palette", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForColor(index int, field string) string {
	return fmt.Sprintf("colors[%d].%s", index, field)
}
