package handlers

import (
	"github.com/dmtrv/blogfeed/internal/models"
	"github.com/dmtrv/blogfeed/internal/pagination"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the authenticated account's ID, or 0 for an
// anonymous request.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// pageMeta builds the shared pagination envelope for list responses.
func pageMeta(page pagination.Page[models.Post]) echo.Map {
	return echo.Map{
		"currentPage":     page.Number,
		"totalPages":      page.TotalPages,
		"totalItems":      page.TotalItems,
		"itemsPerPage":    page.Size,
		"hasNextPage":     page.HasNext,
		"hasPreviousPage": page.HasPrev,
	}
}
