// Package errors implements the HTTP error contract: failures are reported
// as a JSON body carrying a single human-readable "error" message string.
package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the JSON error envelope.
type Response struct {
	Error string `json:"error"`
}

// Respond writes the error envelope with the given status.
func Respond(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	c.JSON(status, Response{Error: err.Error()})
}

// BadRequest reports a client error (parse or validation failure).
func BadRequest(c *gin.Context, err error) {
	Respond(c, http.StatusBadRequest, err)
}

// Internal reports an unexpected server error.
func Internal(c *gin.Context, err error) {
	Respond(c, http.StatusInternalServerError, err)
}
