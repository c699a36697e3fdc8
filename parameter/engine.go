package parameter

import "time"

// Game Loop & Engine Timing
const (
	// SimulationHz is the fixed logic timestep frequency
	SimulationHz = 60

	// SimulationStep is the fixed logic timestep duration
	SimulationStep = time.Second / SimulationHz

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
