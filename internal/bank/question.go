package bank

import (
	"math/rand"
	"slices"
)

// Kind indicates how a question is answered.
type Kind string

const (
	// MultipleChoice has exactly one correct answer.
	MultipleChoice Kind = "multiple_choice"

	// MultipleSelection has one or more correct answers.
	MultipleSelection Kind = "multiple_selection"
)

// Question is one exam question loaded from a bank file.
//
// Correctness is by exact string match against Choices. If the same text
// appears twice in Choices and is listed as correct, both occurrences are
// treated as correct.
type Question struct {
	// ID is an optional author-assigned identifier. Empty if absent.
	ID string

	// Text is the question prompt as it appears on the exam.
	Text string

	// Points is the point value printed next to the question. Defaults to 1.
	Points int

	// Kind selects single-answer or multi-answer semantics.
	Kind Kind

	// Choices are the answer options in declared order.
	Choices []string

	// Correct holds the correct answer values. Exactly one element for
	// MultipleChoice; every element must appear verbatim in Choices
	// (a precondition on the bank file, not enforced here).
	Correct []string

	// perm is the cached shuffle permutation, set at most once on the
	// first shuffle request and reused for the rest of the instance's
	// lifetime so a question keeps one choice order per run.
	perm []int
}

// shuffleChoices computes and caches a uniform random permutation of the
// choice indices. Callers check the cache first; the permutation is never
// recomputed.
func (q *Question) shuffleChoices() {
	q.perm = rand.Perm(len(q.Choices))
}

// ShuffledChoices returns the choices reordered by the cached permutation,
// computing the permutation on first call. The second return value is the
// correct-answer set expressed against the returned order: for
// MultipleSelection it is the subsequence of shuffled choices whose text is
// declared correct (preserving shuffled order); for MultipleChoice it is
// the declared value unchanged, since reordering does not move a value.
func (q *Question) ShuffledChoices() (choices, correct []string) {
	if q.perm == nil {
		q.shuffleChoices()
	}

	choices = make([]string, len(q.Choices))
	for i, j := range q.perm {
		choices[i] = q.Choices[j]
	}

	if q.Kind == MultipleSelection {
		for _, c := range choices {
			if slices.Contains(q.Correct, c) {
				correct = append(correct, c)
			}
		}
		return choices, correct
	}
	return choices, q.Correct
}
