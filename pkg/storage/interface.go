package storage

import "github.com/ShaojieDai/SCRO/pkg/models"

// ResultStore caches completed assessments keyed by product name so
// callers can de-duplicate repeat work within a run. Implementations can
// use any backend: in-memory, Redis, PostgreSQL, etc.
//
// Readiness is an explicit queryable state rather than a process-wide
// flag: a caller that warms the store marks it ready once, and other
// callers decide whether to trust lookups before that point.
type ResultStore interface {
	// Get retrieves a cached assessment. The second return is false
	// when no live entry exists for the key.
	Get(key string) (*models.SupplyChainAssessment, bool)

	// Put stores an assessment under the key.
	Put(key string, assessment *models.SupplyChainAssessment)

	// Ready reports whether the store has been warmed.
	Ready() bool

	// MarkReady flags the store as warmed.
	MarkReady()
}
