package assets

import (
	"embed"
	"fmt"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed tuning.yaml
	TuningYAML []byte
)

// EnemySpawn places one opponent on the roster, left to right.
type EnemySpawn struct {
	Name string
	X    float64
	// HazardTrigger marks the roster member whose defeat releases the
	// aerial ambush.
	HazardTrigger bool
}

// Level holds the world geometry parsed from a TMX map: the ground line the
// fighters stand on, the roster, and the scripted-sequence coordinates.
type Level struct {
	Name   string
	Width  float64 // world units
	Height float64

	GroundY       float64 // y of the ground line fighters stand on
	PlayerSpawnX  float64
	FallBoundaryX float64 // retreating past this with no opponent starts the fall
	EndThresholdX float64 // win requires the player past this

	EnemySpawns []EnemySpawn
}

// LoadLevel parses an embedded TMX file. World geometry lives in map
// properties; fighters are object groups.
func LoadLevel(tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:   tmxPath,
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	lvl.GroundY = levelMap.Properties.GetFloat("groundY")
	lvl.FallBoundaryX = levelMap.Properties.GetFloat("fallBoundaryX")
	lvl.EndThresholdX = levelMap.Properties.GetFloat("endThresholdX")

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				lvl.PlayerSpawnX = o.X
			}
		case "EnemySpawns":
			for _, o := range og.Objects {
				lvl.EnemySpawns = append(lvl.EnemySpawns, EnemySpawn{
					Name:          o.Name,
					X:             o.X,
					HazardTrigger: o.Properties.GetBool("hazardTrigger"),
				})
			}
		}
	}

	if len(lvl.EnemySpawns) == 0 {
		return nil, fmt.Errorf("level %s defines no enemy spawns", tmxPath)
	}

	// Sort the roster left-to-right so selection order matches world order.
	sort.Slice(lvl.EnemySpawns, func(i, j int) bool {
		return lvl.EnemySpawns[i].X < lvl.EnemySpawns[j].X
	})

	return lvl, nil
}
