package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ai-health-platform/internal/chat"
	"ai-health-platform/pkg/response"
	"ai-health-platform/pkg/scope"
)

// Chat godoc
// @Summary     Chat with the health coach
// @Description Classifies the message intent, answers through the LLM chain, and stores both turns.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, sc, chat.ChatInput{Message: req.Message})
	if err != nil {
		h.l.Errorf(ctx, "chat.http.Chat: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newChatResp(output))
}

// History godoc
// @Summary     Chat history
// @Description Returns the caller's conversation, oldest first.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} historyItemResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	messages, err := h.uc.History(ctx, sc)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, newHistoryResp(messages))
}

// PublicChat godoc
// @Summary     Anonymous chat
// @Description Answers without an account. Degrades to a canned reply when the LLM chain is down, never a server error.
// @Tags        Public
// @Accept      json
// @Produce     json
// @Param       body body publicChatReq true "Message and optional session id"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/chat/public [POST]
func (h *handler) PublicChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req publicChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	output := h.uc.PublicChat(ctx, sessionID, chat.ChatInput{Message: req.Message})

	resp := newChatResp(output)
	resp.SessionID = sessionID
	response.OK(c, resp)
}
