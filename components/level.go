package components

import (
	"github.com/automoto/laserdefender/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
}

var Level = donburi.NewComponentType[LevelData]()

// WaveData tracks wave progression through the level's enemy spawns
type WaveData struct {
	Index      int // Index into CurrentLevel.Waves
	Cleared    int // Number of waves cleared this run
	DelayTimer int // Frames until the next wave spawns
	Spawned    bool
}

var Wave = donburi.NewComponentType[WaveData]()

// ScoreData holds the running score
type ScoreData struct {
	Points int
	Kills  int
}

var Score = donburi.NewComponentType[ScoreData]()
