package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/skeld/the-alignment-problem/internal/models"
)

// SimulateRequest is the body of POST /simulate. Action is accepted for
// wire compatibility but only movement exists today.
type SimulateRequest struct {
	Action string `json:"action"`
}

// SimulateResponse wraps the post-tick snapshot
type SimulateResponse struct {
	Status string                `json:"status"`
	Data   models.StatusSnapshot `json:"data"`
}

// HandleSimulate advances the game by one movement tick, exactly as the
// background ticker does, and returns the resulting snapshot
func (ctx *Context) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// an empty body means the default action
	var req SimulateRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	ctx.State.MoveCrew()
	writeJSON(w, http.StatusOK, SimulateResponse{
		Status: "updated",
		Data:   ctx.State.Snapshot(),
	})
}
