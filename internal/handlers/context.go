package handlers

import (
	"log/slog"

	"github.com/skeld/the-alignment-problem/internal/chat"
	"github.com/skeld/the-alignment-problem/internal/game"
	"github.com/skeld/the-alignment-problem/internal/sse"
)

// Version is reported by the liveness endpoint
const Version = "1.0.0"

// Context holds shared application dependencies
type Context struct {
	State       *game.State
	Responder   *chat.Responder
	Broadcaster *sse.Broadcaster
	Logger      *slog.Logger
}
