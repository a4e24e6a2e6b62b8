package models

// SourceSystem tags log entries emitted by the ship itself rather than an agent
const SourceSystem = "SYSTEM"

// LogEntry is one line in the append-only game log
type LogEntry struct {
	Timestamp string `json:"timestamp"` // HH:MM:SS
	Source    string `json:"source"`    // agent id or SourceSystem
	Message   string `json:"message"`
}
