package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dugiahuy/pave-swap/swap/store/settlements"
)

// Store combines all domain-specific repositories
type Store struct {
	Settlements settlements.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Settlements: settlements.New(db),
	}
}
