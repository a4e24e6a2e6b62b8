package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/skeld/the-alignment-problem/internal/chat"
	"github.com/skeld/the-alignment-problem/internal/config"
	"github.com/skeld/the-alignment-problem/internal/game"
	"github.com/skeld/the-alignment-problem/internal/handlers"
	"github.com/skeld/the-alignment-problem/internal/llm"
	"github.com/skeld/the-alignment-problem/internal/sim"
	"github.com/skeld/the-alignment-problem/internal/sse"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	broadcaster := sse.NewBroadcaster()
	state := game.New(
		game.WithMoveChance(cfg.MoveChance),
		game.WithLogObserver(broadcaster.Publish),
	)

	// Without a credential the chat endpoint still works, rule-based only
	var gen chat.Generator
	if cfg.OpenAIAPIKey != "" {
		gen = llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.LLMTimeout)
		logger.Info("text generator enabled", "model", cfg.OpenAIModel)
	} else {
		logger.Info("no API key set, chat replies are rule-based")
	}
	responder := chat.NewResponder(state, gen, logger)

	ctx := &handlers.Context{
		State:       state,
		Responder:   responder,
		Broadcaster: broadcaster,
		Logger:      logger,
	}

	go sim.Loop(context.Background(), state, cfg.TickInterval, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/", ctx.HandleIndex)
	mux.HandleFunc("/status", ctx.HandleStatus)
	mux.HandleFunc("/chat", ctx.HandleChat)
	mux.HandleFunc("/simulate", ctx.HandleSimulate)
	mux.HandleFunc("/agents/status", ctx.HandleAgentStatus)
	mux.HandleFunc("/events", ctx.HandleEvents)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server starting", "addr", addr)
	if err := http.ListenAndServe(addr, handlers.WithRequestID(logger, mux)); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
