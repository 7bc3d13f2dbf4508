package theme

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	lumeerrors "github.com/lumeui/lume/pkg/errors"
	"github.com/lumeui/lume/tokens"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// theme files. The token validations delegate to the tokens package so the
// accepted vocabulary has a single source of truth.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			_, ok := tokens.ParseVariant(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, ok := tokens.ParseColor(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("size", func(fl validator.FieldLevel) bool {
			_, ok := tokens.ParseSize(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("rounded", func(fl validator.FieldLevel) bool {
			_, ok := tokens.ParseRounded(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Load reads a theme file from disk, validates it, and returns the
// normalized result.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lumeerrors.NewParseError(path, 0, err)
	}

	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, lumeerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&theme); err != nil {
		return nil, err
	}

	normalized := normalize(theme)
	return &normalized, nil
}

// Validate checks a theme against its declared constraints.
func Validate(theme *Theme) error {
	if theme == nil {
		return lumeerrors.NewValidationError("theme", "theme is nil", nil)
	}

	if err := validatorInstance().Struct(theme); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrs); ok && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		message := fmt.Sprintf("failed %q constraint", first.Tag())
		return lumeerrors.NewValidationError(first.Namespace(), message, err)
	}
	return lumeerrors.NewValidationError("theme", err.Error(), err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = fieldErrs
	return true
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
