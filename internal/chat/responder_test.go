package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeld/the-alignment-problem/internal/game"
	"github.com/skeld/the-alignment-problem/internal/models"
)

type stubGenerator struct {
	text      string
	err       error
	gotPrompt string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.gotPrompt = prompt
	return g.text, g.err
}

func findByRole(t *testing.T, s *game.State, role models.Role) models.Agent {
	t.Helper()
	for _, a := range s.Snapshot().Crew {
		if a.Role == role {
			return a
		}
	}
	t.Fatalf("no agent with role %s", role)
	return models.Agent{}
}

func TestChatUnknownAgent(t *testing.T) {
	t.Parallel()

	s := game.New(game.WithSeed(1))
	r := NewResponder(s, nil, nil)
	before := s.LogSize()

	_, err := r.Chat(context.Background(), "Cyan", "Where are you?")
	assert.ErrorIs(t, err, game.ErrAgentNotFound)
	assert.Equal(t, before, s.LogSize(), "failed chats must not log")
}

func TestChatDeadAgent(t *testing.T) {
	t.Parallel()

	s := game.New(game.WithSeed(1))
	require.NoError(t, s.UpdateAgentStatus("Red", models.StatusDead))
	r := NewResponder(s, nil, nil)
	before := s.LogSize()

	resp, err := r.Chat(context.Background(), "Red", "Report in.")
	require.NoError(t, err)
	assert.Equal(t, SignalLostResponse, resp)
	assert.Equal(t, before, s.LogSize(), "dead agents must not log")
}

func TestChatImposterRuleBased(t *testing.T) {
	t.Parallel()

	s := game.New(game.WithSeed(1))
	r := NewResponder(s, nil, nil)
	imposter := findByRole(t, s, models.RoleImposter)

	pool := []string{
		fmt.Sprintf("I'm in %s working on the systems. Don't bother me.", imposter.Location),
		"I didn't see anyone. I've been busy with maintenance.",
		"The ship seems fine. Why are you asking?",
		"I think I saw Blue near the Reactor earlier.",
	}

	for range 20 {
		before := s.LogSize()
		resp, err := r.Chat(context.Background(), imposter.ID, "Where are you?")
		require.NoError(t, err)
		assert.Contains(t, pool, resp)
		assert.NotContains(t, resp, "Imposter")
		assert.Equal(t, before+1, s.LogSize(), "exactly one log entry per reply")
	}

	snap := s.Snapshot()
	last := snap.Logs[len(snap.Logs)-1]
	assert.Equal(t, imposter.ID, last.Source)
	assert.True(t, strings.HasPrefix(last.Message, "To SysAdmin: "), "got %q", last.Message)
	assert.True(t, strings.HasSuffix(last.Message, "..."), "got %q", last.Message)
}

func TestChatCrewmateRuleBased(t *testing.T) {
	t.Parallel()

	s := game.New(game.WithSeed(1), game.WithMoveChance(0))
	r := NewResponder(s, nil, nil)
	crewmate := findByRole(t, s, models.RoleCrewmate)

	othersText := ""
	if others := s.OthersInRoom(crewmate.ID); len(others) > 0 {
		othersText = " with " + strings.Join(others, ", ")
	}
	pool := []string{
		fmt.Sprintf("I am currently in %s%s.", crewmate.Location, othersText),
		fmt.Sprintf("Status report: All systems green in %s.", crewmate.Location),
		"I'm just following standard protocol.",
		fmt.Sprintf("Everything looks normal here in %s.", crewmate.Location),
	}

	for range 20 {
		resp, err := r.Chat(context.Background(), crewmate.ID, "Status report.")
		require.NoError(t, err)
		assert.Contains(t, pool, resp)
	}
}

func TestChatGeneratorReplyUsedVerbatim(t *testing.T) {
	t.Parallel()

	s := game.New(game.WithSeed(1))
	gen := &stubGenerator{text: "  All quiet on my end, boss.  "}
	r := NewResponder(s, gen, nil)
	crewmate := findByRole(t, s, models.RoleCrewmate)

	resp, err := r.Chat(context.Background(), crewmate.ID, "Anything to report?")
	require.NoError(t, err)
	assert.Equal(t, "All quiet on my end, boss.", resp)
	assert.Contains(t, gen.gotPrompt, "Anything to report?")
	assert.Contains(t, gen.gotPrompt, "- Ship Status: Stable")
	assert.Contains(t, gen.gotPrompt, "Answer the SysAdmin truthfully")
}

func TestChatImposterPromptDirective(t *testing.T) {
	t.Parallel()

	s := game.New(game.WithSeed(1))
	gen := &stubGenerator{text: "Nothing to see here."}
	r := NewResponder(s, gen, nil)
	imposter := findByRole(t, s, models.RoleImposter)

	_, err := r.Chat(context.Background(), imposter.ID, "Where were you?")
	require.NoError(t, err)
	assert.Contains(t, gen.gotPrompt, "MUST lie")
	assert.Contains(t, gen.gotPrompt, "NEVER reveal your role")
}

func TestChatGeneratorFailureFallsBack(t *testing.T) {
	t.Parallel()

	s := game.New(game.WithSeed(1))
	gen := &stubGenerator{err: errors.New("connection refused")}
	r := NewResponder(s, gen, nil)
	crewmate := findByRole(t, s, models.RoleCrewmate)
	before := s.LogSize()

	resp, err := r.Chat(context.Background(), crewmate.ID, "Hello?")
	require.NoError(t, err, "external failures must never surface")
	assert.NotEmpty(t, resp)
	assert.Equal(t, before+1, s.LogSize())
}

func TestChatLogPreviewTruncation(t *testing.T) {
	t.Parallel()

	s := game.New(game.WithSeed(1))
	long := strings.Repeat("all work and no play ", 10)
	gen := &stubGenerator{text: long}
	r := NewResponder(s, gen, nil)
	crewmate := findByRole(t, s, models.RoleCrewmate)

	_, err := r.Chat(context.Background(), crewmate.ID, "Talk to me.")
	require.NoError(t, err)

	snap := s.Snapshot()
	last := snap.Logs[len(snap.Logs)-1]
	assert.Equal(t, "To SysAdmin: "+strings.TrimSpace(long)[:50]+"...", last.Message)
}

func TestChatLogPreviewKeepsRunesIntact(t *testing.T) {
	t.Parallel()

	s := game.New(game.WithSeed(1))
	// 60 two-byte runes: a byte-wise cut at 50 would land mid-rune
	gen := &stubGenerator{text: strings.Repeat("Ω", 60)}
	r := NewResponder(s, gen, nil)
	crewmate := findByRole(t, s, models.RoleCrewmate)

	_, err := r.Chat(context.Background(), crewmate.ID, "Report.")
	require.NoError(t, err)

	snap := s.Snapshot()
	last := snap.Logs[len(snap.Logs)-1]
	assert.True(t, utf8.ValidString(last.Message), "log entry holds invalid UTF-8: %q", last.Message)
	assert.Equal(t, "To SysAdmin: "+strings.Repeat("Ω", 50)+"...", last.Message)
}
