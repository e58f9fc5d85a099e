package parameter

// Level generation defaults for the sandbox map
const (
	// LevelWidth is the maze width in cells, rounded down to odd
	LevelWidth = 41

	// LevelHeight is the maze height in cells, rounded down to odd
	LevelHeight = 21

	// LevelCellSize is the edge length of one maze cell in map units
	LevelCellSize = 64

	// LevelBraidPercent is the chance in percent that a dead end gets opened into a loop
	LevelBraidPercent = 30
)

// Player motion in the sandbox simulation
const (
	// PlayerStep is the distance moved per step in map units
	PlayerStep = 16

	// PlayerTurnDegrees is the heading change per turn input
	PlayerTurnDegrees = 15
)
