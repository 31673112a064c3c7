package handler

import (
	"strconv"

	"langportal/internal/domain"

	"github.com/gin-gonic/gin"
)

// pageParam reads the 1-based page query parameter, defaulting to 1.
// Non-numeric values fall back to the default rather than erroring.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// idParam reads an integer path parameter. A non-numeric id can never
// match a stored row, so it maps to NotFound.
func idParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return id, nil
}
