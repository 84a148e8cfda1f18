package registry

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidSchema marks payloads that cannot be mapped into the command model.
var ErrInvalidSchema = errors.New("invalid command schema")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func schemaValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks field constraints on every command and nested option.
func Validate(cmds []ApplicationCommand) error {
	v := schemaValidator()
	for i := range cmds {
		if err := v.Struct(&cmds[i]); err != nil {
			return describeValidation(cmds[i].Name, err)
		}
	}
	return nil
}

func describeValidation(command string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrapf(err, "validate command %q", command)
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		detail := fe.Namespace() + " failed " + fe.Tag()
		if fe.Param() != "" {
			detail += "=" + fe.Param()
		}
		parts = append(parts, detail)
	}
	return errors.Wrapf(ErrInvalidSchema, "command %q: %s", command, strings.Join(parts, "; "))
}
