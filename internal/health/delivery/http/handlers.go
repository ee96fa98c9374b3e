package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/health"
	"ai-health-platform/pkg/response"
	"ai-health-platform/pkg/scope"
)

// UpsertProfile godoc
// @Summary     Create or update health profile
// @Description Creates the caller's health profile or partially updates it. BMI is derived from height and weight.
// @Tags        Health
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body upsertProfileReq true "Profile fields"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/health/profile [PUT]
func (h *handler) UpsertProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpsertProfileReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	profile, err := h.uc.UpsertProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "health.http.UpsertProfile: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newProfileResp(profile))
}

// GetProfile godoc
// @Summary     Get health profile
// @Description Returns the caller's health profile.
// @Tags        Health
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/health/profile [GET]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	profile, err := h.uc.GetProfile(ctx, sc)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newProfileResp(profile))
}

// PredictDiabetes godoc
// @Summary     Predict diabetes risk
// @Description Scores a diabetes risk assessment and stores it in the caller's history.
// @Tags        Health
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body diabetesPredictReq true "Screening features"
// @Success     200 {object} predictionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/health/predict/diabetes [POST]
func (h *handler) PredictDiabetes(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processDiabetesPredictReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PredictDiabetes(ctx, sc, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newPredictionResp(output))
}

// PredictHeart godoc
// @Summary     Predict heart disease risk
// @Description Scores a heart disease risk assessment and stores it in the caller's history.
// @Tags        Health
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body heartPredictReq true "UCI heart features"
// @Success     200 {object} predictionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/health/predict/heart [POST]
func (h *handler) PredictHeart(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processHeartPredictReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PredictHeart(ctx, sc, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newPredictionResp(output))
}

// PredictPCOS godoc
// @Summary     Predict PCOS risk
// @Description Scores a PCOS risk assessment and stores it in the caller's history.
// @Tags        Health
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body pcosPredictReq true "Clinical PCOS features"
// @Success     200 {object} predictionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/health/predict/pcos [POST]
func (h *handler) PredictPCOS(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processPCOSPredictReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PredictPCOS(ctx, sc, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newPredictionResp(output))
}

// ListPredictions godoc
// @Summary     Prediction history
// @Description Returns the caller's prediction history, newest first.
// @Tags        Health
// @Produce     json
// @Security    BearerAuth
// @Param       disease_type query string false "Filter by disease type"
// @Param       limit query int false "Maximum rows (default 10)"
// @Success     200 {array} historyItemResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/health/predictions [GET]
func (h *handler) ListPredictions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListPredictionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	predictions, err := h.uc.ListPredictions(ctx, sc, health.ListPredictionsInput{
		DiseaseType: req.DiseaseType,
		Limit:       req.Limit,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newHistoryResp(predictions))
}

// Trends godoc
// @Summary     Risk trend
// @Description Returns the caller's risk trajectory over time for one disease.
// @Tags        Health
// @Produce     json
// @Security    BearerAuth
// @Param       disease_type path string true "diabetes | heart_disease | pcos"
// @Success     200 {object} trendsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/health/trends/{disease_type} [GET]
func (h *handler) Trends(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Trends(ctx, sc, c.Param("disease_type"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newTrendsResp(output))
}

// AssessDiabetes godoc
// @Summary     Anonymous diabetes assessment
// @Description Scores a diabetes risk assessment without an account. Nothing is stored.
// @Tags        Public
// @Accept      json
// @Produce     json
// @Param       body body diabetesPredictReq true "Screening features"
// @Success     200 {object} predictionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/predict/diabetes [POST]
func (h *handler) AssessDiabetes(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDiabetesPredictReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.AssessDiabetes(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newAssessmentResp(result))
}

// AssessHeart godoc
// @Summary     Anonymous heart disease assessment
// @Description Scores a heart disease risk assessment without an account. Nothing is stored.
// @Tags        Public
// @Accept      json
// @Produce     json
// @Param       body body heartPredictReq true "UCI heart features"
// @Success     200 {object} predictionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/predict/heart [POST]
func (h *handler) AssessHeart(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHeartPredictReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.AssessHeart(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newAssessmentResp(result))
}

// AssessPCOS godoc
// @Summary     Anonymous PCOS assessment
// @Description Scores a PCOS risk assessment without an account. Nothing is stored.
// @Tags        Public
// @Accept      json
// @Produce     json
// @Param       body body pcosPredictReq true "Clinical PCOS features"
// @Success     200 {object} predictionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/predict/pcos [POST]
func (h *handler) AssessPCOS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPCOSPredictReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.AssessPCOS(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newAssessmentResp(result))
}
