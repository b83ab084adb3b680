// internal/core/domain/materials.go
package domain

import (
	"fmt"
	"sort"
)

// MaterialKind identifies one of the packaging material counters a
// production house tracks.
type MaterialKind string

// Material kind constants. The set is fixed; each kind maps 1:1 to a
// stock column on production_houses and a quantity column on transactions.
const (
	MaterialFilmWhite    MaterialKind = "film_white"
	MaterialFilmBlue     MaterialKind = "film_blue"
	MaterialPattiRole    MaterialKind = "patti_role"
	MaterialAngleBoard24 MaterialKind = "angle_board_24"
	MaterialAngleBoard32 MaterialKind = "angle_board_32"
	MaterialAngleBoard36 MaterialKind = "angle_board_36"
	MaterialAngleBoard39 MaterialKind = "angle_board_39"
	MaterialAngleBoard48 MaterialKind = "angle_board_48"
	MaterialCapHit       MaterialKind = "cap_hit"
	MaterialCapSimple    MaterialKind = "cap_simple"
	MaterialFirmshit     MaterialKind = "firmshit"
	MaterialThermocol    MaterialKind = "thermocol"
	MaterialMettleAngle  MaterialKind = "mettle_angle"
	MaterialBlackCover   MaterialKind = "black_cover"
	MaterialPackingClip  MaterialKind = "packing_clip"
	MaterialPatiya       MaterialKind = "patiya"
	MaterialPlypatia     MaterialKind = "plypatia"
)

// MaterialKinds lists every tracked kind in stable column order.
var MaterialKinds = []MaterialKind{
	MaterialFilmWhite,
	MaterialFilmBlue,
	MaterialPattiRole,
	MaterialAngleBoard24,
	MaterialAngleBoard32,
	MaterialAngleBoard36,
	MaterialAngleBoard39,
	MaterialAngleBoard48,
	MaterialCapHit,
	MaterialCapSimple,
	MaterialFirmshit,
	MaterialThermocol,
	MaterialMettleAngle,
	MaterialBlackCover,
	MaterialPackingClip,
	MaterialPatiya,
	MaterialPlypatia,
}

// IsValid reports whether k is one of the tracked kinds.
func (k MaterialKind) IsValid() bool {
	for _, known := range MaterialKinds {
		if k == known {
			return true
		}
	}
	return false
}

// QuantitySet maps material kinds to unit counts. A zero entry and a
// missing entry are equivalent.
type QuantitySet map[MaterialKind]int

// NewQuantitySet coerces raw request values into a QuantitySet. Unknown
// keys are ignored and negative values are rejected; absent kinds stay
// at zero.
func NewQuantitySet(raw map[string]int) (QuantitySet, error) {
	qs := make(QuantitySet, len(MaterialKinds))
	for key, v := range raw {
		kind := MaterialKind(key)
		if !kind.IsValid() {
			continue
		}
		if v < 0 {
			return nil, NewValidationError(key, "quantity cannot be negative")
		}
		if v > 0 {
			qs[kind] = v
		}
	}
	return qs, nil
}

// Validate checks that every entry belongs to the tracked set and is
// non-negative.
func (q QuantitySet) Validate() error {
	for kind, v := range q {
		if !kind.IsValid() {
			return NewValidationError(string(kind), "unknown material kind")
		}
		if v < 0 {
			return NewValidationError(string(kind), "quantity cannot be negative")
		}
	}
	return nil
}

// Get returns the count for a kind, zero when absent.
func (q QuantitySet) Get(kind MaterialKind) int {
	return q[kind]
}

// Positive returns only the strictly positive entries. Deltas and
// restores operate on this subset.
func (q QuantitySet) Positive() QuantitySet {
	out := make(QuantitySet)
	for kind, v := range q {
		if v > 0 {
			out[kind] = v
		}
	}
	return out
}

// IsZero reports whether no kind has a positive count.
func (q QuantitySet) IsZero() bool {
	for _, v := range q {
		if v > 0 {
			return false
		}
	}
	return true
}

// PositiveKinds returns the kinds with positive counts in column order.
func (q QuantitySet) PositiveKinds() []MaterialKind {
	var kinds []MaterialKind
	for _, kind := range MaterialKinds {
		if q[kind] > 0 {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Shortfalls compares requested counts against available stock and
// returns every kind that cannot be satisfied, sorted by kind name so
// error output is deterministic.
func (q QuantitySet) Shortfalls(available QuantitySet) []Shortfall {
	var out []Shortfall
	for kind, want := range q {
		if want <= 0 {
			continue
		}
		if have := available[kind]; have < want {
			out = append(out, Shortfall{
				Kind:      kind,
				Requested: want,
				Available: have,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// ToMap renders the full set with every tracked kind present, for API
// responses and exports.
func (q QuantitySet) ToMap() map[string]int {
	out := make(map[string]int, len(MaterialKinds))
	for _, kind := range MaterialKinds {
		out[string(kind)] = q[kind]
	}
	return out
}

// Shortfall describes one material kind that could not be fulfilled.
type Shortfall struct {
	Kind      MaterialKind `json:"kind"`
	Requested int          `json:"requested"`
	Available int          `json:"available"`
}

func (s Shortfall) String() string {
	return fmt.Sprintf("%s: requested %d, available %d", s.Kind, s.Requested, s.Available)
}
