package parameter

// SizeCode is a set of candidate asteroid tiers; one is drawn uniformly per
// spawn slot
type SizeCode []int

// Common codes
var (
	CodeLarge  = SizeCode{7, 8, 9}
	CodeMedium = SizeCode{1, 2, 3, 4, 5, 6, 7}
	CodeAny    = SizeCode{1, 2, 3, 4, 5, 6, 7, 8, 9}
	CodeSmall  = SizeCode{1, 2, 3}
	CodeHuge   = SizeCode{8, 9}
)

// SpawnChance is one independently-evaluated probabilistic spawn entry
type SpawnChance struct {
	Chance float64
	Code   SizeCode
}

// LevelSpawn declares a level's asteroid wave: every guaranteed slot spawns,
// each chance entry rolls independently
type LevelSpawn struct {
	Guaranteed []SizeCode
	Random     []SpawnChance
}

// LevelSpawnTable indexes by level starting at 1. Levels beyond the table
// fall back to `level` slots of CodeAny each.
var LevelSpawnTable = []LevelSpawn{
	{ // level 1
		Guaranteed: []SizeCode{CodeLarge, CodeMedium},
	},
	{ // level 2
		Guaranteed: []SizeCode{CodeLarge, CodeMedium, CodeAny},
		Random:     []SpawnChance{{0.5, CodeSmall}},
	},
	{ // level 3
		Guaranteed: []SizeCode{CodeLarge, CodeMedium, CodeAny, CodeAny},
		Random:     []SpawnChance{{0.5, CodeSmall}, {0.25, CodeMedium}},
	},
	{ // level 4
		Guaranteed: []SizeCode{CodeLarge, CodeLarge, CodeMedium, CodeAny, CodeAny},
		Random:     []SpawnChance{{0.5, CodeMedium}, {0.25, CodeMedium}},
	},
	{ // level 5
		Guaranteed: []SizeCode{CodeLarge, CodeLarge, CodeMedium, CodeMedium, CodeAny, CodeAny},
		Random:     []SpawnChance{{0.5, CodeMedium}, {0.33, CodeHuge}},
	},
	{ // level 6
		Guaranteed: []SizeCode{CodeHuge, CodeLarge, CodeLarge, CodeMedium, CodeAny, CodeAny, CodeAny},
		Random:     []SpawnChance{{0.5, CodeMedium}, {0.33, CodeHuge}},
	},
	{ // level 7
		Guaranteed: []SizeCode{CodeHuge, CodeLarge, CodeLarge, CodeMedium, CodeMedium, CodeAny, CodeAny, CodeAny},
		Random:     []SpawnChance{{0.5, CodeAny}, {0.33, CodeHuge}, {0.25, CodeHuge}},
	},
}

// UFO wave sizing: 1–3 UFOs times the level, spawned after the wave delay
const (
	UFOWaveMinPerLevel = 1
	UFOWaveMaxPerLevel = 3
)

// DeadlyPersonalityLevel is the level from which deadly UFOs appear with
// DeadlyPersonalityChance
const (
	DeadlyPersonalityLevel  = 5
	DeadlyPersonalityChance = 0.5
)
