// Package ident generates the sequential entity identifiers used across all
// collections (RES001, INV002, ...).
package ident

import "fmt"

// Next returns the first unused identifier of the form prefix + zero-padded
// sequence number. The width grows past three digits once the sequence
// exceeds 999 (RES1000), matching the zero-pad-minimum semantics.
func Next(prefix string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}

	for counter := 1; ; counter++ {
		id := fmt.Sprintf("%s%03d", prefix, counter)
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}
