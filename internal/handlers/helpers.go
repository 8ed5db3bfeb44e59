package handlers

import (
	"math"
	"strconv"

	"github.com/Musabek03/Instagram-clone/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user ID from JWT claims.
// Returns 0 when the request carries no valid claims.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// getPagination parses page/limit query parameters with bounded defaults.
func getPagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return page, limit
}

// listMeta builds the pagination meta block shared by all list responses.
func listMeta(page, limit int, totalItems int64) echo.Map {
	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))
	return echo.Map{
		"currentPage":     page,
		"totalPages":      totalPages,
		"totalItems":      totalItems,
		"itemsPerPage":    limit,
		"hasNextPage":     page < totalPages,
		"hasPreviousPage": page > 1,
	}
}
