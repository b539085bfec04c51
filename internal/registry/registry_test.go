package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfrund/funnel/internal/config"
	"github.com/nfrund/funnel/internal/content"
)

func TestRegistry(t *testing.T) {
	cfg := &config.Config{Addr: ":0"}
	reg := New(cfg)
	assert.Same(t, cfg, reg.Config())

	_, ok := Get(reg, ContentStoreKey)
	assert.False(t, ok)
	assert.Panics(t, func() { MustGet(reg, ContentStoreKey) })

	store := content.NewStore(content.Default())
	Set(reg, ContentStoreKey, store)

	got, ok := Get(reg, ContentStoreKey)
	assert.True(t, ok)
	assert.Same(t, store, got)
	assert.Same(t, store, MustGet(reg, ContentStoreKey))
}

func TestRegistryTypeMismatch(t *testing.T) {
	reg := New(nil)
	Set(reg, Key[string]("shared"), "value")

	_, ok := Get(reg, Key[int]("shared"))
	assert.False(t, ok)
}
