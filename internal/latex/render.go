// Package latex renders questions and document scaffolding for the LaTeX
// exam document class. The output is compiled by an external toolchain;
// this package only produces the source text.
package latex

import (
	"fmt"
	"strings"

	"examgen/internal/bank"
)

// Document section markers appended around the rendered questions.
const (
	BeginQuestions = "\\begin{questions}\n"
	EndQuestions   = "\\end{questions}\n"
	EndDocument    = "\\end{document}"
)

// RenderQuestion produces the exam-class block for one question: a
// \question header carrying the point value, then one \choice or
// \correctchoice line per answer option, then \end{choices}.
//
// With shuffle set, choices appear in the question's shuffled order
// (computed once per question and cached); otherwise declared order is
// kept and the output is fully deterministic.
func RenderQuestion(q *bank.Question, shuffle bool) string {
	choices, correct := q.Choices, q.Correct
	if shuffle {
		choices, correct = q.ShuffledChoices()
	}

	correctSet := make(map[string]bool, len(correct))
	for _, c := range correct {
		correctSet[c] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\question[%d] %s\n", q.Points, q.Text)
	b.WriteString("\\begin{choices}\n")
	for _, c := range choices {
		if correctSet[c] {
			fmt.Fprintf(&b, "\\correctchoice %s\n", c)
		} else {
			fmt.Fprintf(&b, "\\choice %s\n", c)
		}
	}
	b.WriteString("\\end{choices}\n")
	return b.String()
}
