package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-visualiser/infrastructure/datastore"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/internal/usecases/charting"
)

type textRenderer struct{}

func (textRenderer) Render(w io.Writer, fig *domain.Figure) error {
	_, err := fmt.Fprint(w, fig.Title)
	return err
}

func (textRenderer) ContentType() string { return "text/plain" }

func newTestRegistry(ttl time.Duration, max int) (*Registry, *time.Time) {
	charter := charting.NewService(datastore.New("test", nil), textRenderer{}, "Pink Morsels")
	registry := NewRegistry(charter, ttl, max)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }

	seq := 0
	registry.newID = func() (string, error) {
		seq++
		return fmt.Sprintf("s%d", seq), nil
	}

	return registry, &now
}

func TestRegistry_GetOrCreate(t *testing.T) {
	registry, _ := newTestRegistry(time.Hour, 10)

	s, created, err := registry.GetOrCreate("")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "s1", s.ID)

	again, created, err := registry.GetOrCreate("s1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created, err := registry.GetOrCreate("desconhecida")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "s2", other.ID)
	assert.Equal(t, 2, registry.Len())
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	registry, _ := newTestRegistry(time.Hour, 10)
	ctx := context.Background()

	a, err := registry.Create()
	require.NoError(t, err)
	b, err := registry.Create()
	require.NoError(t, err)

	_, err = a.Dispatcher.Dispatch(ctx, charting.EventRegionSelector, "north")
	require.NoError(t, err)

	assert.Equal(t, domain.SelectionNorth, a.Controller.Selection())
	assert.Equal(t, domain.SelectionAll, b.Controller.Selection())

	view, err := b.Controller.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(view.Image, []byte("(All)")))
}

func TestRegistry_Expiration(t *testing.T) {
	registry, now := newTestRegistry(30*time.Minute, 10)

	s, err := registry.Create()
	require.NoError(t, err)

	*now = now.Add(20 * time.Minute)
	_, ok := registry.Get(s.ID)
	assert.True(t, ok, "acesso dentro do ttl renova a sessão")

	*now = now.Add(25 * time.Minute)
	_, ok = registry.Get(s.ID)
	assert.True(t, ok)

	*now = now.Add(31 * time.Minute)
	_, ok = registry.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_EvictsOnCreate(t *testing.T) {
	registry, now := newTestRegistry(30*time.Minute, 2)

	first, err := registry.Create()
	require.NoError(t, err)

	*now = now.Add(time.Minute)
	second, err := registry.Create()
	require.NoError(t, err)

	// Limite atingido: a sessão mais antiga sai
	*now = now.Add(time.Minute)
	_, err = registry.Create()
	require.NoError(t, err)

	assert.Equal(t, 2, registry.Len())
	_, ok := registry.Get(first.ID)
	assert.False(t, ok)
	_, ok = registry.Get(second.ID)
	assert.True(t, ok)

	// Sessões expiradas saem antes de criar uma nova
	*now = now.Add(time.Hour)
	_, err = registry.Create()
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())
}
