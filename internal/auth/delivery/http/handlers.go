package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/pkg/response"
	"ai-health-platform/pkg/scope"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates a new user account with email and password.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - email already registered"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "auth.http.Register: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newUserResp(output.User))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a JWT token pair.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Refresh godoc
// @Summary     Refresh tokens
// @Description Exchanges a refresh token for a new JWT token pair.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body refreshReq true "Refresh token"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefreshReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Me godoc
// @Summary     Current user
// @Description Returns the authenticated user's account and profile.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "auth.http.Me: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newUserResp(output.User))
}

// UpdateProfile godoc
// @Summary     Update profile
// @Description Partially updates the authenticated user's profile fields.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateProfileReq true "Profile fields"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateProfileReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "auth.http.UpdateProfile: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newUserResp(output.User))
}
