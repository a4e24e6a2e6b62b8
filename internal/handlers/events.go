package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// HandleEvents streams appended game-log entries as Server-Sent Events
func (ctx *Context) HandleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := ctx.Broadcaster.Subscribe()
	defer ctx.Broadcaster.Unsubscribe(client)

	done := r.Context().Done()
	for {
		select {
		case <-done:
			return
		case entry := <-client:
			data, err := json.Marshal(entry)
			if err != nil {
				ctx.Logger.Error("encode log entry", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: log\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
