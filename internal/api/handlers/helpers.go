// internal/api/handlers/helpers.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"sports-health-centers-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// respond writes v as JSON without escaping non-ASCII or HTML characters.
func respond(c *gin.Context, status int, v any) {
	c.PureJSON(status, v)
}

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

var registerOnce sync.Once

// RegisterValidation makes validation errors report query parameter names
// (the form tag) instead of Go field names.
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
}

// bindQuery binds and validates the query string into dst. On failure it
// writes a 400 and returns false.
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		rejectInvalid(c, validationMessage(err))
		return false
	}
	return true
}

// rejectBlank writes a 400 and returns false when one of names is present in
// the query string with an empty value. Binding would otherwise read it as 0.
func rejectBlank(c *gin.Context, msg func(name string) string, names ...string) bool {
	for _, name := range names {
		if v, ok := c.GetQuery(name); ok && strings.TrimSpace(v) == "" {
			rejectInvalid(c, msg(name))
			return false
		}
	}
	return true
}

func requiredMsg(name string) string { return name + " is required" }

func integerMsg(name string) string { return name + " must be an integer" }

func numberMsg(name string) string { return name + " must be a number" }

func rejectInvalid(c *gin.Context, msg string) {
	metrics.ValidationErrorsTotal.WithLabelValues(c.FullPath()).Inc()
	respondError(c, http.StatusBadRequest, msg)
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return strings.Join(msgs, "; ")
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("invalid number %q", numErr.Num)
	}
	return err.Error()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func observeResults(c *gin.Context, n int) {
	metrics.ResultCount.WithLabelValues(c.FullPath()).Observe(float64(n))
}
