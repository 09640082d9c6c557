package overlay

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TicksPerDay is the length of one in-game day in world ticks.
const TicksPerDay = 24000

// biomeNamespace is stripped from biome identifiers before display.
const biomeNamespace = "minecraft:"

// Translation keys used by the overlay.
const (
	KeyPosition = "hud.infohud.position"
	KeyFacing   = "hud.infohud.facing"
	KeyBiome    = "hud.infohud.biome"
	KeyDay      = "hud.infohud.day"
	KeyFPS      = "hud.infohud.fps"
)

// Translate resolves a translation key and positional arguments to display
// text.
type Translate func(key string, args ...any) string

// Direction is a cardinal facing.
type Direction int

const (
	South Direction = iota
	West
	North
	East
)

// TranslationKey returns the key of the localized direction label.
func (d Direction) TranslationKey() string {
	switch d {
	case West:
		return "hud.infohud.west"
	case North:
		return "hud.infohud.north"
	case East:
		return "hud.infohud.east"
	default:
		return "hud.infohud.south"
	}
}

func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case North:
		return "North"
	case East:
		return "East"
	default:
		return "South"
	}
}

// NormalizeYaw maps any yaw in degrees into [0, 360).
func NormalizeYaw(yaw float64) float64 {
	return math.Mod(math.Mod(yaw, 360)+360, 360)
}

// FacingOf classifies a yaw. Yaw 0 looks south and grows clockwise toward
// west, following the engine's convention. NaN and infinite yaws report East.
func FacingOf(yaw float64) Direction {
	yaw = NormalizeYaw(yaw)
	switch {
	case yaw < 45 || yaw >= 315:
		return South
	case yaw < 135:
		return West
	case yaw < 225:
		return North
	default:
		return East
	}
}

// BiomeName turns a biome identifier such as "minecraft:frozen_peaks" into
// "Frozen Peaks". Only the leading default namespace is removed; the rest of
// each underscore segment keeps its case.
func BiomeName(id string) string {
	raw := strings.TrimPrefix(id, biomeNamespace)
	parts := strings.Split(raw, "_")
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		r, size := utf8.DecodeRuneInString(part)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(part[size:])
	}
	return sb.String()
}

// DaysElapsed returns the number of whole days elapsed at the given time of
// day, truncated toward zero.
func DaysElapsed(ticks int64) int64 {
	return ticks / TicksPerDay
}

// BlockPos is an integer world position.
type BlockPos struct {
	X, Y, Z int
}

// BlockPosOf floors a world position to the block containing it.
func BlockPosOf(x, y, z float64) BlockPos {
	return BlockPos{X: floorInt(x), Y: floorInt(y), Z: floorInt(z)}
}

func floorInt(v float64) int {
	return int(math.Floor(v))
}

// Lines is the derived text of one frame.
type Lines struct {
	Left  []string
	Right []string
}

func deriveLines(state State, player *Player, world World, fps int, tr Translate) Lines {
	var out Lines
	pos := BlockPosOf(player.X, player.Y, player.Z)
	if state.Enabled(Coordinates) {
		out.Left = append(out.Left, tr(KeyPosition, pos.X, pos.Y, pos.Z))
	}
	if state.Enabled(Facing) {
		label := tr(FacingOf(player.Yaw).TranslationKey())
		out.Left = append(out.Left, tr(KeyFacing, label))
	}
	if state.Enabled(Biome) {
		out.Left = append(out.Left, tr(KeyBiome, BiomeName(world.BiomeAt(pos))))
	}
	if state.Enabled(DayCount) {
		out.Left = append(out.Left, tr(KeyDay, DaysElapsed(world.TimeOfDay())))
	}
	if state.Enabled(FPS) {
		out.Right = append(out.Right, tr(KeyFPS, fps))
	}
	return out
}
