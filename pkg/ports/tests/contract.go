package tests

import (
	"testing"

	"github.com/aretw0/doro/pkg/ports"
)

// ResourceProviderContractTest is a reusable test suite that verifies if an adapter complies with ports.ResourceProvider.
// setupData maps each key to the identifiers the provider is expected to return, in order.
func ResourceProviderContractTest(t *testing.T, provider ports.ResourceProvider, setupData map[string][]string) {
	t.Helper()

	// 1. Known keys return their assets in order
	t.Run("Assets_Known", func(t *testing.T) {
		for key, expected := range setupData {
			got := provider.Assets(key)
			if len(got) != len(expected) {
				t.Fatalf("asset count mismatch for %s. got %v, want %v", key, got, expected)
			}
			for i := range expected {
				if got[i] != expected[i] {
					t.Errorf("asset %d mismatch for %s. got %q, want %q", i, key, got[i], expected[i])
				}
			}
		}
	})

	// 2. Unknown keys return nothing
	t.Run("Assets_Unknown", func(t *testing.T) {
		if got := provider.Assets("non-existent-key"); len(got) != 0 {
			t.Errorf("expected no assets for unknown key, got %v", got)
		}
	})

	// 3. Results are stable
	t.Run("Assets_Stable", func(t *testing.T) {
		for key := range setupData {
			first := provider.Assets(key)
			second := provider.Assets(key)
			if len(first) != len(second) {
				t.Errorf("unstable result for %s: %v vs %v", key, first, second)
			}
		}
	})
}
