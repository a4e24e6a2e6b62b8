package handlers

import "net/http"

// HandleIndex serves the liveness payload
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "System Online",
		"version": Version,
	})
}

// HandleStatus returns the current status snapshot
func (ctx *Context) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, ctx.State.Snapshot())
}
