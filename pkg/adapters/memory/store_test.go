package memory_test

import (
	"testing"

	"github.com/aretw0/spotlight/pkg/adapters/memory"
	"github.com/aretw0/spotlight/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunSettingsStoreContract(t, store)
}
