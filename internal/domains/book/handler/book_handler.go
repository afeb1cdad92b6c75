package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/response"
	"library-catalog/pkg/logger"
)

// BookHandler handles the /api/books endpoints.
type BookHandler struct {
	service book.Service
}

// NewBookHandler creates the handler with its service injected.
func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /api/books.
// 200 [{id,title,author,description}]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, books)
}

// Get handles GET /api/books/:id.
// 200 {id,title,author,description} | 404
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// Create handles POST /api/books.
// 201 with Location header and the created record
func (h *BookHandler) Create(c *gin.Context) {
	var req book.UpsertBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, fmt.Sprintf("/api/books/%d", created.ID), created)
}

// Update handles PUT /api/books/:id.
// 204 | 400 (id mismatch) | 404
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req book.UpsertBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// Delete handles DELETE /api/books/:id.
// 204 | 404 (also on a second delete of the same id)
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// pathID parses the :id path parameter, writing a 400 on failure.
func (h *BookHandler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid book id")
		return 0, false
	}
	return id, true
}

// handleError maps domain errors to the HTTP statuses of the API.
func (h *BookHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c)
	case errors.Is(err, book.ErrIDMismatch):
		response.BadRequest(c, "Path id and body id do not match")
	case errors.As(err, &validationErrs):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("book request failed", err)
		response.InternalServerError(c)
	}
}
