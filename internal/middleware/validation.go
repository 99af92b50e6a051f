package middleware

import (
	stderrors "errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationConfig represents validation middleware configuration
type ValidationConfig struct {
	CustomValidators    map[string]validator.Func
	CustomErrorMessages map[string]string
}

var bloodGroupPattern = regexp.MustCompile(`^(A|B|AB|O)[+-]$`)

func validBloodGroup(fl validator.FieldLevel) bool {
	return bloodGroupPattern.MatchString(fl.Field().String())
}

func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		CustomValidators: map[string]validator.Func{
			"bloodgroup": validBloodGroup,
		},
		CustomErrorMessages: map[string]string{
			"required":   "Field is required",
			"email":      "Invalid email format",
			"min":        "Value is too short",
			"max":        "Value is too long",
			"oneof":      "Value is not one of the allowed options",
			"bloodgroup": "Invalid blood group",
		},
	}
}

// RegisterValidators installs the custom tags and reports fields by their
// JSON names. It must run before any request is bound.
func RegisterValidators(config ValidationConfig) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return stderrors.New("gin binding engine is not go-playground/validator")
	}
	for tag, fn := range config.CustomValidators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return nil
}

// Validation answers 400 with one entry per failing field when a handler
// reported validator errors.
func Validation(config ValidationConfig) gin.HandlerFunc {
	if err := RegisterValidators(config); err != nil {
		panic(err)
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		var validationErrors []ValidationError
		for _, err := range c.Errors {
			var errs validator.ValidationErrors
			if !stderrors.As(err.Err, &errs) {
				continue
			}
			for _, e := range errs {
				msg := config.CustomErrorMessages[e.Tag()]
				if msg == "" {
					msg = e.Error()
				}
				validationErrors = append(validationErrors, ValidationError{
					Field:   e.Field(),
					Message: msg,
				})
			}
		}

		if len(validationErrors) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, &httputil.Response{
				Status:  httputil.StatusError,
				Message: "Validation failed",
				Errors:  validationErrors,
			})
		}
	}
}
