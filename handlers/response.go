package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"MediMaga/admin"
	"MediMaga/middlewares"
	"MediMaga/services"
	"MediMaga/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const invalidBodyMessage = "Invalid request body"

// respondError maps the service error taxonomy onto HTTP statuses. Storage failures
// are logged and reported, and the client only sees internalMessage.
func respondError(c *gin.Context, err error, internalMessage string) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var queryErr *admin.InvalidQueryError

	switch {
	case errors.As(err, &validationErr):
		middlewares.HttpError(c, capitalize(validationErr.Error()), http.StatusBadRequest)
	case errors.As(err, &queryErr):
		middlewares.HttpError(c, capitalize(queryErr.Error()), http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		middlewares.HttpError(c, capitalize(notFoundErr.Error()), http.StatusNotFound)
	default:
		_ = c.Error(err)
		utils.GetLogger().Error(internalMessage,
			zap.String("path", c.FullPath()),
			zap.Error(err))
		middlewares.HttpError(c, internalMessage, http.StatusInternalServerError)
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// trimmedParam rejects blank path parameters before they reach the service.
func trimmedParam(c *gin.Context, name string) (string, bool) {
	value := strings.TrimSpace(c.Param(name))
	if value == "" {
		middlewares.HttpError(c, "Missing "+name, http.StatusBadRequest)
		return "", false
	}
	return value, true
}

// logStaffAction records which staff member changed a record. Requests without a
// token identity (staff auth disabled outside production) log as "unauthenticated".
func logStaffAction(c *gin.Context, action string, fields ...zap.Field) {
	staff, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		staff = "unauthenticated"
	}
	utils.GetLogger().Info(action, append(fields, zap.String("staff", staff))...)
}
