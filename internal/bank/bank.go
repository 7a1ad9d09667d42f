// Package bank loads question banks from YAML files and samples questions
// from them for exam assembly.
package bank

import (
	"fmt"
	"math/rand"
)

// Bank is a named, ordered collection of questions loaded from one file.
// It is immutable after load except for each question's shuffle cache.
type Bank struct {
	Name      string
	Questions []*Question
}

// Sample returns n distinct questions drawn uniformly at random without
// replacement. The returned order carries no meaning. n = 0 is valid and
// returns an empty slice; n larger than the bank returns a CapacityError.
// The bank's question list is never mutated, and every call samples
// independently of previous calls.
func (b *Bank) Sample(n int) ([]*Question, error) {
	if n < 0 {
		return nil, fmt.Errorf("bank %q: negative sample size %d", b.Name, n)
	}
	if n > len(b.Questions) {
		return nil, &CapacityError{Bank: b.Name, Requested: n, Available: len(b.Questions)}
	}

	out := make([]*Question, 0, n)
	for _, i := range rand.Perm(len(b.Questions))[:n] {
		out = append(out, b.Questions[i])
	}
	return out, nil
}
