package physics

import "github.com/kamstrup/intmap"

// pairKey identifies an unordered pair of bodies.
func pairKey(a, b BodyId) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

// Merge drops every contact whose unordered body pair was already reported,
// keeping the first occurrence and the input order.
func Merge(contacts []Contact) []Contact {
	seen := intmap.NewSet[uint64](len(contacts))
	merged := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		key := pairKey(c.A.id, c.B.id)
		if seen.Has(key) {
			continue
		}
		seen.Add(key)
		merged = append(merged, c)
	}
	return merged
}

// ResolveAll resolves the contacts in order and applies each impulse before
// the next contact is resolved. A later contact on the same body sees the
// velocity the earlier ones left behind, so a body touching two obstacles
// along the same normal bounces once.
func ResolveAll(contacts []Contact, k Coefficients) []Impulse {
	impulses := make([]Impulse, len(contacts))
	for i, c := range contacts {
		impulses[i] = Resolve(c, k)
		impulses[i].Apply()
	}
	return impulses
}
