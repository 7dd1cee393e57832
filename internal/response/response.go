package response

import (
	"github.com/gin-gonic/gin"
)

// The CHAIN client consumes bare records and arrays, so success responses
// carry the payload directly instead of an envelope. Errors are JSON objects
// with a stable code, a message, and optional per-field detail. Request
// tracing travels in the X-Request-ID header.

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Success sends a successful JSON response with the given status code and
// the payload as the body.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Code: code, Message: GetMessage(code)})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, ErrorBody{Code: code, Message: GetMessage(code), Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Code: code, Message: GetMessage(code)})
}
