package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:levels
var assetFS embed.FS

type Level struct {
	Name        string
	Width       int
	Height      int
	PlayerSpawn math.Vec2
	Waves       []Wave // ordered by wave number
}

// Wave is the set of enemies that enter together
type Wave struct {
	Number int
	Spawns []EnemySpawn
}

// EnemySpawn places an enemy. X is its column; Y is the line it flies in to.
type EnemySpawn struct {
	X         float64
	Y         float64
	EnemyType string // empty means the default type
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			level := l.MustLoadLevel(path.Join("levels", entry.Name()))
			levels = append(levels, level)
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses a Tiled map with PlayerSpawn and EnemySpawn object groups.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		PlayerSpawn: math.NewVec2(
			float64(levelMap.Width*levelMap.TileWidth)/2,
			float64(levelMap.Height*levelMap.TileHeight)*0.9,
		),
	}

	waves := make(map[int][]EnemySpawn)
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				level.PlayerSpawn = math.NewVec2(og.Objects[0].X, og.Objects[0].Y)
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				number := o.Properties.GetInt("wave")
				waves[number] = append(waves[number], EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					EnemyType: o.Properties.GetString("enemyType"),
				})
			}
		}
	}

	for number, spawns := range waves {
		// Left to right so enemies enter in a readable order
		sort.Slice(spawns, func(i, j int) bool { return spawns[i].X < spawns[j].X })
		level.Waves = append(level.Waves, Wave{Number: number, Spawns: spawns})
	}
	sort.Slice(level.Waves, func(i, j int) bool { return level.Waves[i].Number < level.Waves[j].Number })

	if len(level.Waves) == 0 {
		return Level{}, fmt.Errorf("level %s has no enemy spawns", levelPath)
	}

	return level, nil
}
