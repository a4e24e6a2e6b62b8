package handlers

import (
	"errors"
	"net/http"

	"github.com/skeld/the-alignment-problem/internal/game"
	"github.com/skeld/the-alignment-problem/internal/models"
)

// StatusUpdateRequest is the body of POST /agents/status
type StatusUpdateRequest struct {
	AgentID string `json:"agent_id"`
	Status  string `json:"status"`
}

// HandleAgentStatus lets the host runtime mark an agent Dead (or revive it)
func (ctx *Context) HandleAgentStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	status, ok := models.ParseStatus(req.Status)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "Unknown status value")
		return
	}

	if err := ctx.State.UpdateAgentStatus(req.AgentID, status); err != nil {
		if errors.Is(err, game.ErrAgentNotFound) {
			writeError(w, http.StatusNotFound, "Agent not found")
			return
		}
		ctx.Logger.Error("status update failed", "agent", req.AgentID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
