package world

import (
	"math"

	"infohud/internal/core"
	"infohud/internal/overlay"
)

// Biomes lists the biome identifiers the generator hands out. Index order is
// the palette order used by BiomeView.
var Biomes = []string{
	"minecraft:plains",
	"minecraft:forest",
	"minecraft:desert",
	"minecraft:frozen_peaks",
	"minecraft:dark_forest",
	"minecraft:warm_ocean",
	"minecraft:cherry_grove",
	"terralith:volcanic_peaks",
}

// Config controls world generation.
type Config struct {
	Seed int64
	// RegionSize is the edge length in blocks of one biome region.
	RegionSize int
	// SpawnRadius bounds the random spawn offset from the origin.
	SpawnRadius float64
	// StartTime is the initial time of day in ticks.
	StartTime int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Seed: 1337, RegionSize: 32, SpawnRadius: 64}
}

// World is a flat voxel world with region-hashed biomes and a tick clock.
type World struct {
	cfg    Config
	time   int64
	player overlay.Player
}

// New generates a world and spawns the player at a seeded position.
func New(cfg Config) *World {
	if cfg.RegionSize <= 0 {
		cfg.RegionSize = 1
	}
	rng := core.NewRNG(cfg.Seed)
	w := &World{cfg: cfg, time: cfg.StartTime}
	w.player = overlay.Player{
		X:   rng.Range(-cfg.SpawnRadius, cfg.SpawnRadius),
		Y:   64,
		Z:   rng.Range(-cfg.SpawnRadius, cfg.SpawnRadius),
		Yaw: float64(rng.IntN(4) * 90),
	}
	return w
}

// Seed returns the generation seed.
func (w *World) Seed() int64 { return w.cfg.Seed }

// TimeOfDay returns the number of ticks since the world began.
func (w *World) TimeOfDay() int64 { return w.time }

// Tick advances the world clock by one tick.
func (w *World) Tick() { w.time++ }

// Player returns a copy of the player state.
func (w *World) Player() overlay.Player { return w.player }

// Teleport places the player at the given position.
func (w *World) Teleport(x, y, z float64) {
	w.player.X, w.player.Y, w.player.Z = x, y, z
}

// Turn rotates the player by delta degrees. Yaw is kept unnormalized, the
// same way the engine reports it.
func (w *World) Turn(delta float64) { w.player.Yaw += delta }

// Move walks forward and strafes right relative to the current yaw. Yaw 0
// looks toward +Z.
func (w *World) Move(forward, strafe float64) {
	rad := w.player.Yaw * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	w.player.X += -sin*forward - cos*strafe
	w.player.Z += cos*forward - sin*strafe
}

// BiomeAt returns the identifier of the biome at pos.
func (w *World) BiomeAt(pos overlay.BlockPos) string {
	return Biomes[w.biomeIndex(pos.X, pos.Z)]
}

func (w *World) biomeIndex(x, z int) int {
	rx := floorDiv(x, w.cfg.RegionSize)
	rz := floorDiv(z, w.cfg.RegionSize)
	return int(hash2(w.cfg.Seed, rx, rz) % uint64(len(Biomes)))
}

// BiomeView fills grid with biome indices centred on the player, one cell per
// block.
func (w *World) BiomeView(grid *core.ByteGrid) {
	origin := overlay.BlockPosOf(w.player.X, w.player.Y, w.player.Z)
	x0 := origin.X - grid.W/2
	z0 := origin.Z - grid.H/2
	for gy := 0; gy < grid.H; gy++ {
		for gx := 0; gx < grid.W; gx++ {
			grid.Set(gx, gy, uint8(w.biomeIndex(x0+gx, z0+gy)))
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if r := a % b; r < 0 {
		q--
	}
	return q
}

func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func hash2(seed int64, x, z int) uint64 {
	ux := uint64(uint32(int32(x)))
	uz := uint64(uint32(int32(z)))
	return mix64(uint64(seed) ^ (ux * 0x9e3779b97f4a7c15) ^ (uz * 0xbf58476d1ce4e5b9))
}
