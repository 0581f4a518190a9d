package compose

import (
	"github.com/google/uuid"

	"mixin-generator/internal/analyze"
	"mixin-generator/internal/model"
)

// Round is one generation round.
type Round struct {
	// ID identifies the round in logs and reports.
	ID uuid.UUID
	// Table holds the declarations of the round.
	Table *analyze.SymbolTable
	// ActiveMarkers are the markers whose declarations are processed.
	ActiveMarkers []model.TypeID
	// Over is set for the final round, which generates nothing.
	Over bool
}

// NewRound creates a round over table with every bound marker active.
func NewRound(table *analyze.SymbolTable) *Round {
	return &Round{
		ID:            uuid.New(),
		Table:         table,
		ActiveMarkers: table.MarkerIDs(),
	}
}
