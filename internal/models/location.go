package models

// Location is a named ship area
type Location string

const (
	LocationBridge     Location = "Bridge"
	LocationReactor    Location = "Reactor"
	LocationMedBay     Location = "MedBay"
	LocationAdmin      Location = "Admin"
	LocationO2         Location = "O2"
	LocationStorage    Location = "Storage"
	LocationElectrical Location = "Electrical"
)

// ShipLocations is the fixed set of areas agents can occupy
var ShipLocations = []Location{
	LocationBridge,
	LocationReactor,
	LocationMedBay,
	LocationAdmin,
	LocationO2,
	LocationStorage,
	LocationElectrical,
}
