package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/arjungandhi/datepick/pkg/tui"
)

var (
	validate     *validator.Validate
	validateErr  error
	validateOnce sync.Once
)

func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate = validator.New()
		err := validate.RegisterValidation("duration", validDuration)
		if err != nil {
			validateErr = fmt.Errorf("failed to register duration validation: %w", err)
		}
	})
	return validate, validateErr
}

func validDuration(fl validator.FieldLevel) bool {
	_, err := tui.ParseSlideDuration(fl.Field().String())
	return err == nil
}

// Validate checks the settings and reports every invalid field.
func (s *Settings) Validate() error {
	v, err := getValidator()
	if err != nil {
		return err
	}
	err = v.Struct(s)
	if err == nil {
		if s.SelectorStartingYear != 0 && s.SelectorEndingYear != 0 && s.SelectorEndingYear < s.SelectorStartingYear {
			return fmt.Errorf("invalid settings: selector_ending_year is before selector_starting_year")
		}
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid settings: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}
