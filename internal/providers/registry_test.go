package providers_test

import (
	"testing"

	"github.com/vrsandeep/mango-chapters/internal/providers"
	"github.com/vrsandeep/mango-chapters/internal/providers/mockadex"
	"github.com/vrsandeep/mango-chapters/internal/providers/weebcentral"
)

func TestProviderRegistry(t *testing.T) {
	providers.UnregisterAll()
	t.Cleanup(providers.UnregisterAll)
	providers.Register(weebcentral.New())
	providers.Register(mockadex.New())

	t.Run("Get All Providers", func(t *testing.T) {
		all := providers.GetAll()
		if len(all) != 2 {
			t.Fatalf("Expected 2 providers, got %d", len(all))
		}
		if all[0].ID != "mockadex" || all[1].ID != "weebcentral" {
			t.Errorf("Expected providers ordered by ID, got %+v", all)
		}
	})

	t.Run("Get Existing Provider", func(t *testing.T) {
		p, ok := providers.Get("mockadex")
		if !ok {
			t.Fatal("Expected to find provider 'mockadex', but it was not found")
		}
		if p.GetInfo().Name != "Mockadex" {
			t.Errorf("Expected provider name 'Mockadex', got '%s'", p.GetInfo().Name)
		}
	})

	t.Run("Get Non-existent Provider", func(t *testing.T) {
		if _, ok := providers.Get("nonexistent"); ok {
			t.Fatal("Expected not to find provider 'nonexistent', but it was found")
		}
	})

	t.Run("Panic on Duplicate Registration", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected registration of a duplicate provider to panic, but it did not")
			}
		}()
		providers.Register(mockadex.New())
	})

	t.Run("Unregister All", func(t *testing.T) {
		providers.UnregisterAll()
		if len(providers.GetAll()) != 0 {
			t.Error("Expected an empty registry")
		}
	})
}
