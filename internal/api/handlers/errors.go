package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/pkg/response"
	"github.com/whenwework/platform-go/pkg/utils"
)

// RegisterValidation makes validation errors report json field names.
func RegisterValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	}
}

func validationMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input"
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		lbl := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s", lbl, fe.Param())
		case "len":
			msg = fmt.Sprintf("%s must be exactly %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "numeric":
			msg = fmt.Sprintf("%s must contain only digits", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Fail(c, http.StatusBadRequest, validationMessage(err), err.Error())
		return false
	}
	return true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrForbidden),
		errors.Is(err, application.ErrAdminRequired),
		errors.Is(err, application.ErrAccountDisabled):
		return http.StatusForbidden
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrBusinessNotFound),
		errors.Is(err, application.ErrJobNotFound),
		errors.Is(err, application.ErrApplicationNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrBusinessExists),
		errors.Is(err, application.ErrApplicationExists),
		errors.Is(err, application.ErrInvalidTransition),
		errors.Is(err, application.ErrWithdrawNotAllowed),
		errors.Is(err, application.ErrJobNotOpen),
		errors.Is(err, application.ErrJobHasApplications),
		errors.Is(err, application.ErrUserHasApplications):
		return http.StatusConflict
	case errors.Is(err, application.ErrInvalidOTP),
		errors.Is(err, application.ErrIncorrectOTP),
		errors.Is(err, application.ErrInvalidSetupToken),
		errors.Is(err, application.ErrNoStatusChange),
		errors.Is(err, application.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrStorageDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError maps a service error onto a status code and failure envelope.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	response.Fail(c, status, err.Error(), nil)
}
