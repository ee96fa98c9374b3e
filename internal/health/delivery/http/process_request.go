package http

import (
	"github.com/gin-gonic/gin"
)

// processUpsertProfileReq binds and validates the profile upsert body.
func (h *handler) processUpsertProfileReq(c *gin.Context) (upsertProfileReq, error) {
	var req upsertProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDiabetesPredictReq binds and validates the diabetes prediction body.
func (h *handler) processDiabetesPredictReq(c *gin.Context) (diabetesPredictReq, error) {
	var req diabetesPredictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processHeartPredictReq binds and validates the heart prediction body.
func (h *handler) processHeartPredictReq(c *gin.Context) (heartPredictReq, error) {
	var req heartPredictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processPCOSPredictReq binds and validates the PCOS prediction body.
func (h *handler) processPCOSPredictReq(c *gin.Context) (pcosPredictReq, error) {
	var req pcosPredictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListPredictionsReq binds and validates the history query params.
func (h *handler) processListPredictionsReq(c *gin.Context) (listPredictionsReq, error) {
	var req listPredictionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
