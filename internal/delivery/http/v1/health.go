package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, healthPingTimeout)
	defer cancel()

	err := h.pinger.Ping(ctx)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("database is unreachable")
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
