package addon

import "formwarp/internal/host"

// Config carries the addon's trigger and warp constants.
type Config struct {
	// TriggerItem opens the main menu when used.
	TriggerItem string
	// CommandPrefix marks a chat message as an addon command.
	CommandPrefix string
	// WarpPos and WarpRot are the fixed warp destination.
	WarpPos host.Vec3
	WarpRot host.Rotation
	// RandomRange bounds each axis of a random warp to [0, RandomRange).
	RandomRange int
}

// DefaultConfig returns the stock trigger item, command prefix and warp
// destinations.
func DefaultConfig() Config {
	return Config{
		TriggerItem:   "clock",
		CommandPrefix: ".",
		WarpPos:       host.Vec3{X: 96, Y: 64, Z: -132},
		WarpRot:       host.Rotation{Yaw: 90},
		RandomRange:   100,
	}
}
