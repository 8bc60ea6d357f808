// Scenario generation using layered simplex noise.
// Places regions on jittered grid positions, derives terrain from elevation,
// rainfall, and temperature layers, and assigns procedural names.
package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds scenario generation parameters.
type GenConfig struct {
	Seed    int64    // Random seed (0 = random)
	Regions int      // Number of regions to place
	Extent  float64  // World half-width; positions fall in [-Extent, Extent]
	Nations []string // Nation names; regions are assigned round-robin by proximity band
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Seed:    0,
		Regions: 12,
		Extent:  100,
		Nations: []string{"Aldmark", "Vessar", "Korune"},
	}
}

// RegionSeed holds the parameters for one generated region.
type RegionSeed struct {
	Name        string
	Nation      string
	Position    Position
	TerrainName string
}

// GenerateScenario produces a deterministic set of region seeds from the config.
func GenerateScenario(cfg GenConfig) []RegionSeed {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	elevNoise := opensimplex.NewNormalized(seed)
	rainNoise := opensimplex.NewNormalized(seed + 1)
	tempNoise := opensimplex.NewNormalized(seed + 2)

	// Jittered grid: regions spread across the extent without clumping.
	side := int(math.Ceil(math.Sqrt(float64(cfg.Regions))))
	if side < 1 {
		side = 1
	}
	cell := 2 * cfg.Extent / float64(side)

	names := generateNames(rng, cfg.Regions)
	seeds := make([]RegionSeed, 0, cfg.Regions)

	for i := 0; i < cfg.Regions; i++ {
		col := i % side
		row := i / side
		pos := Position{
			X: -cfg.Extent + (float64(col)+0.25+rng.Float64()*0.5)*cell,
			Y: -cfg.Extent + (float64(row)+0.25+rng.Float64()*0.5)*cell,
		}

		elev := octaveNoise(elevNoise, pos.X, pos.Y, 4, 0.015, 0.5)
		rain := octaveNoise(rainNoise, pos.X, pos.Y, 3, 0.012, 0.5)
		temp := octaveNoise(tempNoise, pos.X, pos.Y, 3, 0.010, 0.5)

		// Temperature falls toward the map's north/south edges.
		temp = temp*0.6 + (1.0-math.Abs(pos.Y)/cfg.Extent)*0.4

		nationName := ""
		if len(cfg.Nations) > 0 {
			// Band by column so nations hold contiguous territory.
			nationName = cfg.Nations[col*len(cfg.Nations)/side]
		}

		seeds = append(seeds, RegionSeed{
			Name:        names[i],
			Nation:      nationName,
			Position:    pos,
			TerrainName: deriveTerrain(elev, rain, temp),
		})
	}

	return seeds
}

// deriveTerrain determines terrain type from environmental parameters.
func deriveTerrain(elev, rain, temp float64) string {
	switch {
	case elev > 0.72:
		return "Mountain"
	case elev < 0.30:
		return "Coast"
	case temp < 0.25:
		return "Tundra"
	case rain < 0.25 && temp > 0.5:
		return "Desert"
	case rain > 0.45 && elev > 0.45:
		return "Forest"
	default:
		return "Plains"
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// generateNames produces procedural region names by combining syllables.
func generateNames(rng *rand.Rand, count int) []string {
	prefixes := []string{
		"Iron", "Green", "Ash", "Stone", "Mill", "Cross", "Black",
		"Silver", "Red", "White", "Dark", "Bright", "High", "Low",
		"Old", "New", "Far", "Deep", "Long", "Broad", "Gold", "Frost",
		"Storm", "Thorn", "Elm", "Oak", "Pine", "Copper", "River",
	}
	suffixes := []string{
		"haven", "ford", "hollow", "wick", "bridge", "gate", "keep",
		"stead", "wood", "field", "dale", "crest", "vale", "port",
		"march", "bury", "marsh", "well", "brook", "cliff", "moor",
		"ridge", "watch", "fall", "rest", "point", "reach", "helm",
	}

	used := make(map[string]bool)
	names := make([]string, 0, count)

	for len(names) < count {
		name := prefixes[rng.Intn(len(prefixes))] + suffixes[rng.Intn(len(suffixes))]
		if !used[name] {
			used[name] = true
			names = append(names, name)
		}
	}

	return names
}
