package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaojieDai/SCRO/pkg/models"
)

func TestMemoryStore_PutAndGet(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	assessment := &models.SupplyChainAssessment{OverallRisk: models.RiskLow}

	store.Put("widget", assessment)

	got, ok := store.Get("widget")
	require.True(t, ok)
	assert.Same(t, assessment, got)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_MissingKey(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	got, ok := store.Get("absent")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemoryStore_NilAssessmentIgnored(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	store.Put("widget", nil)

	_, ok := store.Get("widget")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_ExpiryEvictsOnRead(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	store.Put("widget", &models.SupplyChainAssessment{})

	// Still live just inside the TTL.
	store.now = func() time.Time { return base.Add(59 * time.Second) }
	_, ok := store.Get("widget")
	assert.True(t, ok)

	store.now = func() time.Time { return base.Add(61 * time.Second) }
	_, ok = store.Get("widget")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len(), "expired entry should be evicted")
}

func TestMemoryStore_ZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore(0)
	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	store.Put("widget", &models.SupplyChainAssessment{})

	store.now = func() time.Time { return base.Add(1000 * time.Hour) }
	_, ok := store.Get("widget")
	assert.True(t, ok)
}

func TestMemoryStore_Overwrite(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	first := &models.SupplyChainAssessment{OverallRisk: models.RiskLow}
	second := &models.SupplyChainAssessment{OverallRisk: models.RiskHigh}

	store.Put("widget", first)
	store.Put("widget", second)

	got, ok := store.Get("widget")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Readiness(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	assert.False(t, store.Ready())
	store.MarkReady()
	assert.True(t, store.Ready())
}

func TestMemoryStore_ImplementsResultStore(t *testing.T) {
	var _ ResultStore = NewMemoryStore(time.Hour)
}
