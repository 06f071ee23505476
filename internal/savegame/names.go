package savegame

import (
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Word lists for generated save names. 24 x 24 x 24 = 13,824 combinations.
var (
	adjectives = []string{
		"swift", "bold", "silent", "brave", "fierce", "hidden",
		"iron", "steel", "crimson", "azure", "golden", "shadow",
		"stormy", "rapid", "mighty", "frozen", "blazing", "lucky",
		"grim", "noble", "rogue", "salty", "misty", "daring",
	}
	nouns = []string{
		"eagle", "shark", "falcon", "kraken", "anchor", "harbor",
		"trident", "compass", "tempest", "reef", "admiral", "corsair",
		"lighthouse", "mariner", "cannon", "voyager", "tide", "wave",
		"captain", "dolphin", "orca", "galleon", "frigate", "sextant",
	}
	verbs = []string{
		"strikes", "sails", "hunts", "dives", "charges", "drifts",
		"roars", "sinks", "rises", "patrols", "ambushes", "circles",
		"surges", "prowls", "anchors", "fires", "scouts", "rams",
		"glides", "storms", "wanders", "returns", "vanishes", "triumphs",
	}
)

// NameSeparator joins the three words of a generated name.
const NameSeparator = "-"

// NameGenerator draws adjective-noun-verb save names.
// It does not check for collisions with existing saves.
type NameGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// generators offsets time-based seeds so generators created within the same
// clock tick still differ.
var generators atomic.Int64

// NewNameGenerator creates a generator with its own random source.
// A seed of 0 means time based.
func NewNameGenerator(seed int64) *NameGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano() + generators.Add(1)
	}
	return &NameGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a new name such as "swift-eagle-strikes".
func (g *NameGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return strings.Join([]string{
		adjectives[g.rng.Intn(len(adjectives))],
		nouns[g.rng.Intn(len(nouns))],
		verbs[g.rng.Intn(len(verbs))],
	}, NameSeparator)
}

// Words exposes the three word lists, mainly for tests and the names command.
func Words() (adj, noun, verb []string) {
	return adjectives, nouns, verbs
}
