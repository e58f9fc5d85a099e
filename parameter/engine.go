package parameter

import "time"

// Sandbox loop timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// Logging
const (
	// LogDir is where the sandbox writes its debug log
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "automap.log"

	// MaxLogSize triggers rotation of the debug log (10 MiB)
	MaxLogSize = 10 * 1024 * 1024
)

// Audio cue
const (
	// CueSampleRate is the speaker sample rate in Hz
	CueSampleRate = 44100

	// CueFrequency is the tone played when zoom hits a limit
	CueFrequency = 880

	// CueDuration is the length of the tone
	CueDuration = 50 * time.Millisecond
)
