package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds pagination parameters.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// PageMeta is the pagination metadata returned alongside directory listings.
type PageMeta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalMembers int64 `json:"totalMembers"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

// ParsePagination reads page and limit query params. Defaults are 1 and 10.
// Non-positive values fall back to the defaults; large limits are not clamped,
// callers may request arbitrarily big pages.
func ParsePagination(c *fiber.Ctx) Pagination {
	page := parseInt(c.Query("page", "1"), 1)
	limit := parseInt(c.Query("limit", "10"), 10)
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Meta computes the page metadata for a total record count.
func (p Pagination) Meta(total int64) PageMeta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return PageMeta{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalMembers: total,
		HasNext:      p.Page < totalPages,
		HasPrev:      p.Page > 1,
	}
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
