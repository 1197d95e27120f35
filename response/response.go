package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success returns a 200 envelope with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage returns a 200 envelope with data and a message
func SuccessWithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Created returns a 201 envelope for a newly created entity
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// BadRequest returns a 400 envelope for validation failures
func BadRequest(c *gin.Context, errMsg string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error:   errMsg,
	})
}

// Conflict returns a 400 envelope naming the conflicting value.
// Uniqueness violations share the 400 class with validation failures.
func Conflict(c *gin.Context, errMsg string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error:   errMsg,
	})
}

// NotFound returns a 404 envelope with an entity-specific message
func NotFound(c *gin.Context, errMsg string) {
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Error:   errMsg,
	})
}

// ServerError returns a 500 envelope with a generic message.
// Store-level detail is logged by the caller, never leaked here.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error:   "An unexpected error occurred",
	})
}
