package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// FromError maps a business error onto the portal's status conventions:
// not_found -> 404, every other business code -> 400 (the slot conflict
// included), infra -> 500 with the raw message.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case CodeNotFound:
			NotFound(c, be.Code, be.Message)
		default:
			BadRequest(c, be.Code, be.Message)
		}
		return
	}

	Internal(c, "internal_error", err.Error())
}
