package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileTagIDs(t *testing.T) {
	tests := []struct {
		name       string
		current    []uint
		desired    []uint
		wantAdd    []uint
		wantRemove []uint
	}{
		{
			name:       "overlapping sets swap only the difference",
			current:    []uint{1, 2, 3},
			desired:    []uint{2, 3, 4},
			wantAdd:    []uint{4},
			wantRemove: []uint{1},
		},
		{
			name:       "identical sets produce an empty plan",
			current:    []uint{2, 3, 4},
			desired:    []uint{2, 3, 4},
			wantAdd:    nil,
			wantRemove: nil,
		},
		{
			name:       "empty desired removes everything",
			current:    []uint{5, 6},
			desired:    nil,
			wantAdd:    nil,
			wantRemove: []uint{5, 6},
		},
		{
			name:       "empty current adds everything",
			current:    nil,
			desired:    []uint{1, 2},
			wantAdd:    []uint{1, 2},
			wantRemove: nil,
		},
		{
			name:       "both empty is a no-op",
			current:    nil,
			desired:    nil,
			wantAdd:    nil,
			wantRemove: nil,
		},
		{
			name:       "duplicate desired ids collapse to one insert",
			current:    []uint{1},
			desired:    []uint{1, 2, 2},
			wantAdd:    []uint{2},
			wantRemove: nil,
		},
		{
			name:       "duplicate current ids collapse to one delete",
			current:    []uint{1, 1, 2},
			desired:    []uint{2},
			wantAdd:    nil,
			wantRemove: []uint{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAdd, gotRemove := ReconcileTagIDs(tt.current, tt.desired)
			assert.ElementsMatch(t, tt.wantAdd, gotAdd)
			assert.ElementsMatch(t, tt.wantRemove, gotRemove)
		})
	}
}

// Applying a plan and reconciling again must yield an empty plan, so a
// repeated submission of the same tag set performs no writes.
func TestReconcileTagIDs_Idempotent(t *testing.T) {
	current := []uint{1, 2, 3}
	desired := []uint{2, 3, 4}

	toAdd, toRemove := ReconcileTagIDs(current, desired)

	next := applyPlan(current, toAdd, toRemove)
	assert.ElementsMatch(t, desired, next)

	againAdd, againRemove := ReconcileTagIDs(next, desired)
	assert.Empty(t, againAdd)
	assert.Empty(t, againRemove)
}

func applyPlan(current, toAdd, toRemove []uint) []uint {
	removed := make(map[uint]struct{}, len(toRemove))
	for _, id := range toRemove {
		removed[id] = struct{}{}
	}
	var next []uint
	for _, id := range current {
		if _, gone := removed[id]; !gone {
			next = append(next, id)
		}
	}
	return append(next, toAdd...)
}
