package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/shared/errors"
)

// ErrorBody is the JSON body returned for every failed request.
// Clients rely on the "error" key; extra fields may be attached per endpoint
// (e.g. stock_errors on budget saves) by passing them in extras.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSONResponse sends a JSON payload with the given status code.
func JSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// OKResponse sends a 200 response with the given payload.
func OKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ErrorResponse sends an error response with custom status code and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWith sends an error response with extra fields alongside the
// "error" key.
func ErrorResponseWith(c *gin.Context, statusCode int, message string, extras map[string]interface{}) {
	body := gin.H{"error": message}
	for k, v := range extras {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// ErrorResponseWithError maps an error to its HTTP status and sends it.
// Non-application errors are not exposed to the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Error: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error occurred"})
}
