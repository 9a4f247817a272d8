// Package registry provides a global registry of grid seed modes.
// Seed modes register themselves in init() functions, allowing the platform
// to discover and apply them without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Seeder builds the initial grid for a simulation.
// The RuntimeConfig provides grid size, probability and pattern anchor;
// rng is the only source of randomness a seeder may use.
type Seeder func(cfg core.RuntimeConfig, rng *rand.Rand) (*life.Grid, error)

// SeedInfo contains metadata about a registered seed mode.
type SeedInfo struct {
	ID          string
	Description string
}

type entry struct {
	info   SeedInfo
	seeder Seeder
}

var (
	seeders = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a seed mode to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(id, description string, s Seeder) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := seeders[id]; exists {
		panic(fmt.Sprintf("registry: seed mode %q already registered", id))
	}

	seeders[id] = entry{
		info:   SeedInfo{ID: id, Description: description},
		seeder: s,
	}
}

// List returns information about all registered seed modes, sorted by ID.
func List() []SeedInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SeedInfo, 0, len(seeders))
	for _, e := range seeders {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Seed builds a grid using the seed mode registered under id.
// Returns an error if the mode is not registered or the seeder fails.
func Seed(id string, cfg core.RuntimeConfig, rng *rand.Rand) (*life.Grid, error) {
	mu.RLock()
	e, ok := seeders[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown seed mode %q", id)
	}

	return e.seeder(cfg, rng)
}

// Exists checks if a seed mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := seeders[id]
	return ok
}
