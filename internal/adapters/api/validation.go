package api

import (
	stderrors "errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"floodaware.app/internal/core/route"
	"floodaware.app/pkg/errors"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the "destination" tag to gin's validator
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = stderrors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		registerErr = v.RegisterValidation("destination", validateDestination)
	})
	return registerErr
}

func validateDestination(fl validator.FieldLevel) bool {
	return route.IsKnownDestination(fl.Field().String())
}

// jsonFieldName reports fields by their JSON name in validation messages
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func asAppError(err error, target **errors.AppError) bool {
	return stderrors.As(err, target)
}

// bindingError turns a binding failure into a ValidationError naming the first bad field
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return errors.NewValidationError(fe.Field() + " is required")
		case "email":
			return errors.NewValidationError("invalid email format")
		case "destination":
			return errors.NewValidationError("a known destination must be selected")
		default:
			return errors.NewValidationError(fe.Field() + " is invalid")
		}
	}
	return errors.NewValidationError("Invalid request format")
}
