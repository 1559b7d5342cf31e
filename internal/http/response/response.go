package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAppError derives status and code from the error taxonomy.
func RespondAppError(c *gin.Context, err error) {
	RespondError(c, apperrors.HTTPStatus(err), apperrors.Code(err), err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
