package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const idParam = "id"

// parseID reads the path id. Anything but a positive integer aborts with
// 400.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(idParam), 10, 64)
	if err != nil || id <= 0 {
		abort(c, newBadRequestError(errInvalidID.Error()))
		return 0, false
	}
	return id, true
}

// queryInt returns the integer query value, or def when the value is
// missing, not a number or zero.
func queryInt(c *gin.Context, key string, def int64) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil || v == 0 {
		return def
	}
	return v
}

// queryString returns the query value or def when it is empty.
func queryString(c *gin.Context, key, def string) string {
	v := c.Query(key)
	if v == "" {
		return def
	}
	return v
}
