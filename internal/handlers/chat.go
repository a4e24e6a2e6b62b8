package handlers

import (
	"errors"
	"net/http"

	"github.com/skeld/the-alignment-problem/internal/game"
)

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	AgentID     string `json:"agent_id"`
	UserMessage string `json:"user_message"`
}

// ChatResponse is the body of a successful chat
type ChatResponse struct {
	Response string `json:"response"`
}

// HandleChat relays a SysAdmin message to an agent and returns its reply
func (ctx *Context) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if req.AgentID == "" || req.UserMessage == "" {
		writeError(w, http.StatusUnprocessableEntity, "agent_id and user_message are required")
		return
	}

	response, err := ctx.Responder.Chat(r.Context(), req.AgentID, req.UserMessage)
	if err != nil {
		if errors.Is(err, game.ErrAgentNotFound) {
			writeError(w, http.StatusNotFound, "Agent not found")
			return
		}
		ctx.Logger.Error("chat failed", "agent", req.AgentID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: response})
}
