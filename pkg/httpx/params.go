package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseLimitOffset — limit/offset из query.
// limit ограничен [1, maxLimit]; нечисловые значения и отрицательный offset игнорируются.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = clamp(defaultLimit, 1, maxLimit)
	if v, ok := queryInt(c, "limit"); ok {
		limit = clamp(v, 1, maxLimit)
	}
	if v, ok := queryInt(c, "offset"); ok && v >= 0 {
		offset = v
	}
	return limit, offset
}

// Page — окно items[offset : offset+limit]; за пределами среза — пустой срез.
func Page[T any](items []T, limit, offset int) []T {
	if offset < 0 || limit <= 0 || offset >= len(items) {
		return []T{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

func queryInt(c *gin.Context, key string) (int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
