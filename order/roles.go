// Package order checks that the four channels of a rotational position sensor
// (sinP, cosP, sinN, cosN) are wired to their expected roles.
//
// A role assignment is consistent when every ordered pair of channels lines up
// after undoing the quarter-period lag their roles imply. The Resolver searches
// all 24 assignments for the first consistent one.
package order

import "fmt"

// NumRoles is the number of sensor channels
const NumRoles = 4

// Role is the logical function of a channel. Its value is the channel's
// canonical phase in quarter periods.
type Role int

// Sensor roles in canonical phase order
const (
	SinP Role = iota
	CosP
	SinN
	CosN
)

// String returns the channel name used in orderings, e.g. "sinP"
func (r Role) String() string {
	switch r {
	case SinP:
		return "sinP"
	case CosP:
		return "cosP"
	case SinN:
		return "sinN"
	case CosN:
		return "cosN"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Offset is the canonical phase of the role as a fraction of one period
func (r Role) Offset() float64 {
	return float64(r) / NumRoles
}

// CanonicalRoles lists the roles in canonical order
func CanonicalRoles() [NumRoles]Role {
	return [NumRoles]Role{SinP, CosP, SinN, CosN}
}

// RoleOffset is the expected lag of role `to` relative to role `from`, as a
// fraction of one period in [0, 1). RoleOffset(SinP, CosP) is 0.25 and
// RoleOffset(CosP, SinP) is 0.75.
func RoleOffset(from, to Role) float64 {
	d := (int(to) - int(from)) % NumRoles
	if d < 0 {
		d += NumRoles
	}
	return float64(d) / NumRoles
}

// Signal is a labelled channel sampled on a time base shared with its set
type Signal struct {
	Label   string    `json:"label"`
	Samples []float64 `json:"samples"`
}

// Permutation assigns input signals to roles: p[role] is the index of the
// input signal playing that role.
type Permutation [NumRoles]int

// Identity is the permutation that keeps the input order
func Identity() Permutation {
	return Permutation{0, 1, 2, 3}
}

// IsIdentity reports whether p keeps the input order
func (p Permutation) IsIdentity() bool {
	return p == Identity()
}

// Labels returns the input labels in role order
func (p Permutation) Labels(signals [NumRoles]Signal) []string {
	labels := make([]string, NumRoles)
	for role, idx := range p {
		labels[role] = signals[idx].Label
	}
	return labels
}

// Apply returns the input samples in role order
func (p Permutation) Apply(signals [NumRoles]Signal) [NumRoles][]float64 {
	var out [NumRoles][]float64
	for role, idx := range p {
		out[role] = signals[idx].Samples
	}
	return out
}

// next advances p to the next permutation in lexicographic order and reports
// whether one existed
func (p *Permutation) next() bool {
	i := NumRoles - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := NumRoles - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	for l, r := i+1, NumRoles-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
