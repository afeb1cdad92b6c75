// Package response centralizes the wire shapes of the API: plain-text
// status messages for auth and errors, raw JSON documents for resources.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Text writes a plain-text body with the given status.
func Text(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

// JSON writes data as the response body with the given status.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Created writes a 201 with a Location header pointing at the new resource.
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	Text(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Text(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

func InternalServerError(c *gin.Context) {
	Text(c, http.StatusInternalServerError, "Internal server error")
}
