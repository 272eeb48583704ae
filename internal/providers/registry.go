// Package providers keeps the set of chapter sources the server can query.
package providers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vrsandeep/mango-chapters/internal/models"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]models.Provider)
)

// Register adds a new provider to the registry. It's called at startup.
func Register(p models.Provider) {
	mu.Lock()
	defer mu.Unlock()
	info := p.GetInfo()
	if _, exists := registry[info.ID]; exists {
		// Developer error during setup.
		panic(fmt.Sprintf("provider with ID '%s' is already registered", info.ID))
	}
	registry[info.ID] = p
}

// Get returns a provider by its ID.
func Get(id string) (models.Provider, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[id]
	return p, ok
}

// GetAll returns information for all registered providers, ordered by ID.
func GetAll() []models.ProviderInfo {
	mu.RLock()
	defer mu.RUnlock()
	providers := make([]models.ProviderInfo, 0, len(registry))
	for _, p := range registry {
		providers = append(providers, p.GetInfo())
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i].ID < providers[j].ID })
	return providers
}

// UnregisterAll empties the registry. Tests use it to start from a clean state.
func UnregisterAll() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]models.Provider)
}
