package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func TestFilePersisterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	p := NewFilePersister(path)

	first := NewCartStore(p)
	require.NoError(t, first.Add("p1", 2))
	require.NoError(t, first.Add("p2", 1))
	require.NoError(t, first.Add("p1", 3))

	second := NewCartStore(NewFilePersister(path))
	assert.Equal(t, []models.CartEntry{
		{ProductID: "p1", Quantity: 5},
		{ProductID: "p2", Quantity: 1},
	}, second.Entries())
}

func TestFilePersisterMissingFile(t *testing.T) {
	p := NewFilePersister(filepath.Join(t.TempDir(), "missing.json"))

	entries, err := p.Load()
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestFilePersisterCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := NewCartStore(NewFilePersister(path))

	assert.Equal(t, 0, s.Len())
}

func TestFilePersisterClearWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := NewCartStore(NewFilePersister(path))
	require.NoError(t, s.Add("p1", 2))

	s.Clear()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFilePersisterCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "cart.json")
	p := NewFilePersister(path)

	require.NoError(t, p.Save([]models.CartEntry{{ProductID: "p1", Quantity: 1}}))

	entries, err := p.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSessionsHandOutDistinctCarts(t *testing.T) {
	sessions := NewSessions(FileFactory(t.TempDir()))

	a := sessions.Cart("aaaa")
	b := sessions.Cart("bbbb")
	require.NoError(t, a.Add("p1", 1))

	assert.Equal(t, 0, b.Len())
	assert.Same(t, a, sessions.Cart("aaaa"))
}

func TestSessionsDropRehydratesFromMirror(t *testing.T) {
	dir := t.TempDir()
	sessions := NewSessions(FileFactory(dir))

	cart := sessions.Cart("aaaa")
	require.NoError(t, cart.Add("p1", 3))

	sessions.Drop("aaaa")
	rehydrated := sessions.Cart("aaaa")

	assert.NotSame(t, cart, rehydrated)
	assert.Equal(t, 3, rehydrated.Quantity("p1"))
}
