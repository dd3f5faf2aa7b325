package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/go-drift/shapefill/pkg/errors"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// SchemaMajor is the only config schema major version understood.
const SchemaMajor = "v1"

// Shape kinds accepted by Shape.Kind.
const (
	KindRectangle        = "rectangle"
	KindRoundedRectangle = "rounded_rectangle"
	KindCircle           = "circle"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	shapeKinds = map[string]struct{}{KindRectangle: {}, KindRoundedRectangle: {}, KindCircle: {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("hexcolor8", func(fl validator.FieldLevel) bool {
			_, err := graphics.ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("shape_kind", func(fl validator.FieldLevel) bool {
			_, ok := shapeKinds[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("schema_version", func(fl validator.FieldLevel) bool {
			version := canonicalVersion(fl.Field().String())
			return semver.IsValid(version) && semver.Major(version) == SchemaMajor
		})

		validateInst = v
	})
	return validateInst
}

// canonicalVersion adds the leading "v" semver expects.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// Validate checks f against the schema.
func Validate(f *File) error {
	const op = "config.Validate"
	if f == nil {
		return errors.Wrap(op, errors.KindConfig, fmt.Errorf("config is nil"))
	}
	if err := validatorInstance().Struct(f); err != nil {
		return errors.Wrap(op, errors.KindConfig, convertValidationError(err))
	}
	if g := f.Gradient; g != nil && len(g.Stops) > 0 && len(g.Stops) != len(g.Colors) {
		return errors.Wrap(op, errors.KindConfig,
			fmt.Errorf("gradient.stops: got %d stops for %d colors", len(g.Stops), len(g.Colors)))
	}
	if f.Color != "" && f.Gradient != nil {
		return errors.Wrap(op, errors.KindConfig, fmt.Errorf("color and gradient are mutually exclusive"))
	}
	return nil
}

// convertValidationError reports the first failing field by its yaml-ish
// path.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		return fmt.Errorf("%s failed validation for tag '%s'", fieldPath(ve), ve.Tag())
	}
	return err
}

func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
