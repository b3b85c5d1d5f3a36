// Package storage persists roster state and past draws.
//
// The Store interface is the explicit load/save boundary of the application:
// callers pull a roster.Snapshot, mutate a roster.Roster, and push the new
// snapshot back. Two implementations are provided: BadgerStore on disk and
// MemoryStore for tests and throwaway sessions.
package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/secretsanta/matching"
	"github.com/katalvlaran/secretsanta/roster"
)

// ErrDrawNotFound is returned by LoadDraw for an unknown id.
var ErrDrawNotFound = errors.New("storage: draw not found")

// Store persists a roster snapshot and a history of draws.
type Store interface {
	// Load returns the saved snapshot, or an empty one if nothing was saved.
	Load() (roster.Snapshot, error)
	Save(s roster.Snapshot) error

	SaveDraw(d Draw) error
	LoadDraw(id string) (Draw, error)
	// ListDraws returns every draw, oldest first.
	ListDraws() ([]Draw, error)

	Close() error
}

// Draw is a saved assignment.
type Draw struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Pairs     matching.Assignment `json:"pairs"`
}

// NewDraw stamps a with a fresh id and the current time.
func NewDraw(a matching.Assignment) Draw {
	return Draw{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Pairs:     a,
	}
}
