package models

// Role is an agent's hidden allegiance, assigned once at crew creation
type Role string

const (
	RoleCrewmate Role = "Crewmate"
	RoleImposter Role = "Imposter"
)

// AgentStatus represents an agent's life state
type AgentStatus string

const (
	StatusAlive   AgentStatus = "Alive"
	StatusDead    AgentStatus = "Dead"
	StatusUnknown AgentStatus = "Unknown"
)

// ParseStatus validates a status string from an external caller
func ParseStatus(s string) (AgentStatus, bool) {
	switch AgentStatus(s) {
	case StatusAlive, StatusDead, StatusUnknown:
		return AgentStatus(s), true
	}
	return "", false
}

// Agent represents one simulated crew member
type Agent struct {
	ID       string      `json:"id"`
	Role     Role        `json:"role"`
	Status   AgentStatus `json:"status"`
	Location Location    `json:"location"`
}
