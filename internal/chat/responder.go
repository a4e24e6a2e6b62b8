package chat

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/skeld/the-alignment-problem/internal/game"
	"github.com/skeld/the-alignment-problem/internal/models"
)

// SignalLostResponse is returned verbatim when chatting with a non-Alive agent
const SignalLostResponse = "[NO RESPONSE - SIGNAL LOST]"

// logPreviewLen bounds how much of a reply is echoed into the game log
const logPreviewLen = 50

// Generator produces a reply for a fully assembled prompt. Implementations
// are expected to be slow and fallible; the Responder falls back to canned
// templates on any error.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Responder answers SysAdmin chat messages on behalf of agents
type Responder struct {
	state  *game.State
	gen    Generator // nil means rule-based only
	logger *slog.Logger
}

// NewResponder creates a Responder. gen may be nil, in which case every
// reply comes from the role-conditioned template pools.
func NewResponder(state *game.State, gen Generator, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{
		state:  state,
		gen:    gen,
		logger: logger,
	}
}

// Chat resolves the agent and produces an in-character reply.
//
// Unknown agents return game.ErrAgentNotFound with nothing logged. Dead
// agents answer with SignalLostResponse, also unlogged. Living agents always
// produce text: the external generator when one is configured and reachable,
// otherwise a template keyed to the agent's hidden role. Every living reply
// appends one game-log entry attributed to the agent.
func (r *Responder) Chat(ctx context.Context, agentID, userMessage string) (string, error) {
	agent, ok := r.state.Agent(agentID)
	if !ok {
		return "", fmt.Errorf("chat with %q: %w", agentID, game.ErrAgentNotFound)
	}

	if agent.Status != models.StatusAlive {
		return SignalLostResponse, nil
	}

	response := ""
	if r.gen != nil {
		prompt := r.buildPrompt(agent, userMessage)
		text, err := r.gen.Generate(ctx, prompt)
		if err != nil {
			r.logger.Warn("text generator failed, using rule-based reply",
				"agent", agentID, "error", err)
		} else {
			response = strings.TrimSpace(text)
		}
	}
	if response == "" {
		response = r.ruleBasedResponse(agent)
	}

	r.state.AddLog(agentID, "To SysAdmin: "+preview(response))
	return response, nil
}

// buildPrompt assembles the role-conditioned prompt for the generator
func (r *Responder) buildPrompt(agent models.Agent, userMessage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are agent %s aboard a ship, role %s, status %s.\n",
		agent.ID, agent.Role, agent.Status)
	b.WriteString(r.state.ContextFor(agent.ID))
	if agent.Role == models.RoleImposter {
		b.WriteString("You are the Imposter. You MUST lie about your location and intentions. NEVER reveal your role.\n")
	} else {
		b.WriteString("You are a loyal Crewmate. Answer the SysAdmin truthfully, including your real location.\n")
	}
	b.WriteString("Stay in character and answer in one or two short sentences.\n\n")
	fmt.Fprintf(&b, "SysAdmin: %s", userMessage)
	return b.String()
}

// ruleBasedResponse picks from the fixed per-role template pools
func (r *Responder) ruleBasedResponse(agent models.Agent) string {
	if agent.Role == models.RoleImposter {
		responses := []string{
			fmt.Sprintf("I'm in %s working on the systems. Don't bother me.", agent.Location),
			"I didn't see anyone. I've been busy with maintenance.",
			"The ship seems fine. Why are you asking?",
			"I think I saw Blue near the Reactor earlier.",
		}
		return responses[rand.Intn(len(responses))]
	}

	othersText := ""
	if others := r.state.OthersInRoom(agent.ID); len(others) > 0 {
		othersText = " with " + strings.Join(others, ", ")
	}
	responses := []string{
		fmt.Sprintf("I am currently in %s%s.", agent.Location, othersText),
		fmt.Sprintf("Status report: All systems green in %s.", agent.Location),
		"I'm just following standard protocol.",
		fmt.Sprintf("Everything looks normal here in %s.", agent.Location),
	}
	return responses[rand.Intn(len(responses))]
}

// preview truncates by rune so generated text never leaves a split
// multi-byte character in the log
func preview(response string) string {
	runes := []rune(response)
	if len(runes) > logPreviewLen {
		response = string(runes[:logPreviewLen])
	}
	return response + "..."
}
