package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadflow-api/internal/application/service"
	"github.com/sangkips/leadflow-api/internal/presentation/http/dto/response"
	"github.com/sangkips/leadflow-api/internal/presentation/http/middleware"
	"github.com/sangkips/leadflow-api/pkg/apperror"
	"github.com/sangkips/leadflow-api/pkg/daterange"
)

// parseSelector reads range, start and end from the query string
func parseSelector(c *gin.Context, loc *time.Location) (daterange.Selector, error) {
	sel, err := daterange.Parse(c.Query("range"), c.Query("start"), c.Query("end"), loc)
	if err != nil {
		return daterange.Selector{}, apperror.NewBadRequestError(err.Error())
	}
	return sel, nil
}

// wantsWait reports whether the response must carry the remote write result.
// Requests with an Idempotency-Key always wait, since their response is
// stored and replayed as the final outcome.
func wantsWait(c *gin.Context) bool {
	if c.GetHeader(middleware.IdempotencyKeyHeader) != "" {
		return true
	}
	wait, _ := strconv.ParseBool(c.Query("wait"))
	return wait
}

// respondWrite answers a write whose local change is already applied. When
// wantsWait holds the remote result is awaited and any failure is returned;
// otherwise the response is 202 and failures surface as notifications.
func respondWrite(c *gin.Context, pending *service.Pending, status int, message string, data interface{}) {
	if !wantsWait(c) {
		response.Accepted(c, message, data)
		return
	}

	if err := pending.Wait(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	if data == nil {
		response.NoContent(c)
		return
	}
	response.Success(c, status, message, data)
}
