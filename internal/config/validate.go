package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// describe turns a validator field error into a short message keyed by the
// YAML path of the field, e.g. "report.row_limit must be at least 1".
func describe(fe validator.FieldError) string {
	field := yamlPath(fe.StructNamespace())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, fe.Param())
	case "excludesall":
		return field + " must be a plain file name"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// yamlPathNames maps Go struct paths to their YAML keys.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var yamlPathNames = map[string]string{
	"Input":     "input",
	"Output":    "output",
	"Report":    "report",
	"Logging":   "logging",
	"Dir":       "dir",
	"Extension": "extension",
	"File":      "file",
	"RowLimit":  "row_limit",
	"Level":     "level",
	"Format":    "format",
}

func yamlPath(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 0 && parts[0] == "Config" {
		parts = parts[1:]
	}
	for i, p := range parts {
		if name, ok := yamlPathNames[p]; ok {
			parts[i] = name
		}
	}
	return strings.Join(parts, ".")
}
