package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFrom(t *testing.T, target string) Pagination {
	app := fiber.New()

	var got Pagination
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePagination(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	return got
}

func TestParsePagination(t *testing.T) {
	t.Run("defaults to page 1 limit 10", func(t *testing.T) {
		pg := parseFrom(t, "/")
		assert.Equal(t, 1, pg.Page)
		assert.Equal(t, 10, pg.Limit)
		assert.Equal(t, 0, pg.Offset)
	})

	t.Run("reads page and limit", func(t *testing.T) {
		pg := parseFrom(t, "/?page=3&limit=25")
		assert.Equal(t, 3, pg.Page)
		assert.Equal(t, 25, pg.Limit)
		assert.Equal(t, 50, pg.Offset)
	})

	t.Run("non-positive values fall back to defaults", func(t *testing.T) {
		pg := parseFrom(t, "/?page=0&limit=-5")
		assert.Equal(t, 1, pg.Page)
		assert.Equal(t, 10, pg.Limit)
	})

	t.Run("large limits are not clamped", func(t *testing.T) {
		pg := parseFrom(t, "/?limit=100000")
		assert.Equal(t, 100000, pg.Limit)
	})
}

func TestPageMeta(t *testing.T) {
	cases := []struct {
		name    string
		page    int
		limit   int
		total   int64
		pages   int
		hasNext bool
		hasPrev bool
	}{
		{"first of many", 1, 10, 35, 4, true, false},
		{"middle page", 2, 10, 35, 4, true, true},
		{"last page", 4, 10, 35, 4, false, true},
		{"past the end", 9, 10, 35, 4, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"empty set", 1, 10, 0, 0, false, false},
		{"single oversized page", 1, 1000, 35, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := Pagination{Page: tc.page, Limit: tc.limit}.Meta(tc.total)

			assert.Equal(t, tc.page, meta.CurrentPage)
			assert.Equal(t, tc.pages, meta.TotalPages)
			assert.Equal(t, tc.total, meta.TotalMembers)
			assert.Equal(t, tc.hasNext, meta.HasNext)
			assert.Equal(t, tc.hasPrev, meta.HasPrev)
			assert.Equal(t, meta.HasNext, tc.page < meta.TotalPages)
			assert.Equal(t, meta.HasPrev, tc.page > 1)
		})
	}
}
