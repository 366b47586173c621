package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_color", func(fl validator.FieldLevel) bool {
			return themeColorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("icon_set", func(fl validator.FieldLevel) bool {
			set := IconSet(fl.Field().String())
			if set == IconNone {
				return true
			}
			for _, known := range IconSets() {
				if set == known {
					return true
				}
			}
			return false
		})

		_ = v.RegisterValidation("date_adapter", func(fl validator.FieldLevel) bool {
			return contains(DateAdapters(), fl.Field().String())
		})

		_ = v.RegisterValidation("blueprint_name", func(fl validator.FieldLevel) bool {
			return contains(BlueprintNames(), fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func contains(values []string, candidate string) bool {
	for _, v := range values {
		if v == candidate {
			return true
		}
	}
	return false
}
