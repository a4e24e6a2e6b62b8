package models

// StatusSnapshot is an immutable view of the game for the SysAdmin console.
// Crew and Logs are copies; mutating them never touches live state.
type StatusSnapshot struct {
	Crew        []Agent    `json:"crew"`
	Logs        []LogEntry `json:"logs"`
	ActiveAlert string     `json:"active_alert"`
}
