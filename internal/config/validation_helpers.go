package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	nverrors "github.com/alexisbeaulieu97/nuxtvuetify/pkg/errors"
)

// Validate lints merged options and returns every problem found, joined.
// The resolver never calls it: unknown tokens there degrade to omitted features.
func Validate(opts Options) error {
	v := validatorInstance()

	var problems []error
	if err := v.Struct(opts); err != nil {
		problems = append(problems, convertValidationErrors(err)...)
	}

	if opts.Blueprint.Name != "" {
		if err := v.Var(opts.Blueprint.Name, "blueprint_name"); err != nil {
			problems = append(problems, nverrors.NewValidationError("blueprint",
				fmt.Sprintf("unknown blueprint %q (available: %s)", opts.Blueprint.Name, strings.Join(BlueprintNames(), ", ")), err))
		}
	}

	for _, name := range SortedKeys(opts.Themes) {
		colors := opts.Themes[name].Colors
		for _, token := range SortedKeys(colors) {
			if err := v.Var(colors[token], "theme_color"); err != nil {
				problems = append(problems, nverrors.NewValidationError(
					fmt.Sprintf("themes.%s.colors.%s", name, token),
					fmt.Sprintf("%q is not a hex colour", colors[token]), err))
			}
		}
	}

	if opts.Styles != StylesSass && opts.CustomVariables != "" {
		problems = append(problems, nverrors.NewValidationError("customVariables",
			"only used when styles is 'sass'", nil))
	}

	if opts.DefaultTheme != ThemeSystem {
		if _, ok := opts.Themes[opts.DefaultTheme]; !ok {
			if _, builtin := BuiltinThemes()[opts.DefaultTheme]; !builtin {
				problems = append(problems, nverrors.NewValidationError("defaultTheme",
					fmt.Sprintf("theme %q is not defined", opts.DefaultTheme), nil))
			}
		}
	}

	return errors.Join(problems...)
}

// convertValidationErrors normalizes validator errors into module validation errors.
func convertValidationErrors(err error) []error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		out := make([]error, 0, len(ves))
		for _, ve := range ves {
			field := yamlishFieldName(ve)
			msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
			out = append(out, nverrors.NewValidationError(field, msg, ve))
		}
		return out
	}

	return []error{nverrors.NewValidationError("options", err.Error(), err)}
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, lowerFirst(part))
	}
	return strings.Join(lowered, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
