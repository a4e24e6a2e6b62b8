package game

const (
	// CrewSize is the number of agents aboard
	CrewSize = 5

	// ImposterCount is how many agents are secretly hostile
	ImposterCount = 1

	// LogLimit caps how many log entries a snapshot returns
	LogLimit = 50

	// DefaultMoveChance is the per-agent relocation probability per tick
	DefaultMoveChance = 0.3

	// BootMessage is the first entry written to the game log
	BootMessage = "Ship system reboot complete. Crew status: ONLINE."
)

// CrewColors are the fixed agent ids, assigned in order at creation
var CrewColors = []string{"Red", "Blue", "Green", "Yellow", "Purple"}
