package board

import "fmt"

// ShotOutcome classifies the effect of a shot.
type ShotOutcome uint8

const (
	OutcomeAlreadyTargeted ShotOutcome = iota
	OutcomeMiss
	OutcomeHit
	OutcomeSunk
	OutcomeDefeat
)

// String returns a human-readable outcome name.
func (o ShotOutcome) String() string {
	switch o {
	case OutcomeAlreadyTargeted:
		return "AlreadyTargeted"
	case OutcomeMiss:
		return "Miss"
	case OutcomeHit:
		return "Hit"
	case OutcomeSunk:
		return "Sunk"
	case OutcomeDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// ShotResult is returned by Fire. Kind is set for hits on a known ship.
type ShotResult struct {
	Outcome ShotOutcome
	Kind    ShipKind
	HasKind bool
}

// String formats the result for status lines, e.g. "Sunk(Destroyer)".
func (r ShotResult) String() string {
	if r.HasKind && (r.Outcome == OutcomeSunk || r.Outcome == OutcomeDefeat) {
		return fmt.Sprintf("%s(%s)", r.Outcome, r.Kind)
	}
	return r.Outcome.String()
}

// Fire resolves a shot at (col, row) on g, whose ships are described by f.
//
// A cell that was already Hit or Miss is left unchanged and reports
// OutcomeAlreadyTargeted. Empty becomes Miss. Ship becomes Hit; if that
// completes the owning ship the outcome is OutcomeSunk, escalating to
// OutcomeDefeat when every ship of the fleet is now fully hit.
func Fire(g *Grid, f Fleet, col, row int) (ShotResult, error) {
	if !InBounds(col, row) {
		return ShotResult{}, fmt.Errorf("fire at (%d,%d): %w", col, row, ErrOutOfBounds)
	}

	switch g.At(col, row) {
	case Hit, Miss:
		return ShotResult{Outcome: OutcomeAlreadyTargeted}, nil
	case Empty:
		g.Set(col, row, Miss)
		return ShotResult{Outcome: OutcomeMiss}, nil
	}

	g.Set(col, row, Hit)

	kind, ok := f.ShipAt(col, row)
	if !ok {
		return ShotResult{Outcome: OutcomeHit}, nil
	}
	result := ShotResult{Outcome: OutcomeHit, Kind: kind, HasKind: true}

	if !f.IsSunk(g, kind) {
		return result, nil
	}
	result.Outcome = OutcomeSunk
	if f.AllSunk(g) {
		result.Outcome = OutcomeDefeat
	}
	return result, nil
}
