package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/pkg/response"
	"ai-health-platform/pkg/scope"
)

// Summary godoc
// @Summary     Dashboard summary
// @Description Aggregates the caller's latest risk assessments, habit stats and recent agent nudges.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} summaryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/dashboard/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	summary, err := h.uc.Summary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.http.Summary: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newSummaryResp(summary))
}
