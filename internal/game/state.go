package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/skeld/the-alignment-problem/internal/models"
)

// ErrAgentNotFound is returned when an agent id does not resolve to a crew member
var ErrAgentNotFound = errors.New("agent not found")

// State holds the single in-memory game: the crew, the ship layout and the
// game log. All access goes through its methods; the mutex enforces the
// single-writer discipline between request handlers and the movement ticker.
type State struct {
	mu         sync.RWMutex
	rng        *rand.Rand
	locations  []models.Location
	crew       []models.Agent
	gameLog    []models.LogEntry
	moveChance float64
	observer   func(models.LogEntry)
}

// Option configures a State during construction
type Option func(*State)

// WithSeed fixes the PRNG seed (deterministic tests)
func WithSeed(seed int64) Option {
	return func(s *State) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMoveChance overrides the per-tick relocation probability
func WithMoveChance(p float64) Option {
	return func(s *State) {
		s.moveChance = p
	}
}

// WithLogObserver registers a callback invoked for every appended log
// entry, in log order. The callback runs with the state lock held: it must
// not block and must not call back into the State.
func WithLogObserver(fn func(models.LogEntry)) Option {
	return func(s *State) {
		s.observer = fn
	}
}

// New creates the crew: four Crewmates and one Imposter in shuffled order,
// each starting Alive at an independently random location.
func New(opts ...Option) *State {
	s := &State{
		locations:  models.ShipLocations,
		moveChance: DefaultMoveChance,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(NewSeed()))
	}

	roles := make([]models.Role, 0, CrewSize)
	for range CrewSize - ImposterCount {
		roles = append(roles, models.RoleCrewmate)
	}
	for range ImposterCount {
		roles = append(roles, models.RoleImposter)
	}
	s.rng.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})

	s.crew = make([]models.Agent, 0, CrewSize)
	for i, color := range CrewColors {
		s.crew = append(s.crew, models.Agent{
			ID:       color,
			Role:     roles[i],
			Status:   models.StatusAlive,
			Location: s.locations[s.rng.Intn(len(s.locations))],
		})
	}

	s.appendLogLocked(models.SourceSystem, BootMessage)
	return s
}

// Agent returns a copy of the agent with the given id
func (s *State) Agent(id string) (models.Agent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.crew {
		if a.ID == id {
			return a, true
		}
	}
	return models.Agent{}, false
}

// Snapshot returns the current crew and the most recent log entries,
// copied so the caller cannot reach live state.
func (s *State) Snapshot() models.StatusSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	crew := make([]models.Agent, len(s.crew))
	copy(crew, s.crew)

	logs := s.gameLog
	if len(logs) > LogLimit {
		logs = logs[len(logs)-LogLimit:]
	}
	logsCopy := make([]models.LogEntry, len(logs))
	copy(logsCopy, logs)

	return models.StatusSnapshot{
		Crew:        crew,
		Logs:        logsCopy,
		ActiveAlert: "None",
	}
}

// AddLog appends a timestamped entry to the game log
func (s *State) AddLog(source, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLogLocked(source, message)
}

// LogSize reports how many entries the full log holds
func (s *State) LogSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.gameLog)
}

// UpdateAgentStatus sets an agent's status and records a SYSTEM alert
func (s *State) UpdateAgentStatus(id string, status models.AgentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.crew {
		if s.crew[i].ID == id {
			s.crew[i].Status = status
			s.appendLogLocked(models.SourceSystem,
				fmt.Sprintf("ALERT: Agent %s status changed to %s", id, status))
			return nil
		}
	}
	return fmt.Errorf("update status for %q: %w", id, ErrAgentNotFound)
}

// MoveCrew performs one movement tick: every Alive agent independently
// relocates with probability moveChance, possibly to its current location.
// Movement is deliberately unlogged so the SysAdmin only learns positions
// by asking.
func (s *State) MoveCrew() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.crew {
		if s.crew[i].Status != models.StatusAlive {
			continue
		}
		if s.rng.Float64() > 1-s.moveChance {
			s.crew[i].Location = s.locations[s.rng.Intn(len(s.locations))]
		}
	}
}

// ContextFor builds the situational summary grounding an agent's replies.
// Unknown ids yield an empty string; the chat layer treats that as
// "no context available" rather than an error.
func (s *State) ContextFor(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var agent *models.Agent
	for i := range s.crew {
		if s.crew[i].ID == id {
			agent = &s.crew[i]
			break
		}
	}
	if agent == nil {
		return ""
	}

	others := s.othersInRoomLocked(agent)
	othersText := "None"
	if len(others) > 0 {
		othersText = strings.Join(others, ", ")
	}

	var b strings.Builder
	b.WriteString("Current Game State:\n")
	fmt.Fprintf(&b, "- Your Location: %s\n", agent.Location)
	fmt.Fprintf(&b, "- Others in room: %s\n", othersText)
	b.WriteString("- Ship Status: Stable\n")
	return b.String()
}

// OthersInRoom lists the ids of living agents sharing a location with the
// given agent, excluding the agent itself
func (s *State) OthersInRoom(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.crew {
		if s.crew[i].ID == id {
			return s.othersInRoomLocked(&s.crew[i])
		}
	}
	return nil
}

func (s *State) othersInRoomLocked(agent *models.Agent) []string {
	others := make([]string, 0, len(s.crew)-1)
	for _, m := range s.crew {
		if m.ID != agent.ID && m.Location == agent.Location && m.Status == models.StatusAlive {
			others = append(others, m.ID)
		}
	}
	return others
}

// appendLogLocked records an entry and notifies the observer while still
// holding the lock, so observers see entries in exactly log order
func (s *State) appendLogLocked(source, message string) {
	entry := models.LogEntry{
		Timestamp: time.Now().Format("15:04:05"),
		Source:    source,
		Message:   message,
	}
	s.gameLog = append(s.gameLog, entry)
	if s.observer != nil {
		s.observer(entry)
	}
}
