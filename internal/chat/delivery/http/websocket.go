package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"ai-health-platform/internal/chat"
	"ai-health-platform/pkg/scope"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin policy is enforced by the CORS middleware
	},
}

type wsFrame struct {
	Message string `json:"message"`
}

type wsReply struct {
	Response   string  `json:"response"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Fallback   bool    `json:"fallback,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// Websocket godoc
// @Summary     Chat websocket
// @Description Streams the chat pipeline over a websocket; one JSON frame in, one reply frame out.
// @Tags        Chat
// @Router      /ws/chat [GET]
func (h *handler) Websocket(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "chat.http.Websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sc, authed := scope.FromContext(c)
	sessionID := uuid.NewString()

	for {
		var frame wsFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.l.Warnf(ctx, "chat.http.Websocket read: %v", err)
			}
			return
		}
		if frame.Message == "" {
			if err := conn.WriteJSON(wsReply{Error: "message is required"}); err != nil {
				return
			}
			continue
		}

		var reply wsReply
		if authed {
			output, err := h.uc.Chat(ctx, sc, chat.ChatInput{Message: frame.Message})
			if err != nil {
				h.l.Errorf(ctx, "chat.http.Websocket: %v", err)
				reply = wsReply{Error: "failed to generate a reply"}
			} else {
				reply = wsReply{
					Response:   output.Reply,
					Intent:     output.Intent.String(),
					Confidence: output.Confidence,
				}
			}
		} else {
			output := h.uc.PublicChat(ctx, sessionID, chat.ChatInput{Message: frame.Message})
			reply = wsReply{
				Response:   output.Reply,
				Intent:     output.Intent.String(),
				Confidence: output.Confidence,
				Fallback:   output.Fallback,
			}
		}

		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}
