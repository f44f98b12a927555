package beads

import (
	"fmt"
	"strconv"
	"strings"
)

// maxUpwardProbes bounds the upward search. Every sixth integer is a multiple
// of 6, so a match is always found within this many increments.
const maxUpwardProbes = 6

// ParseCount converts raw form input into a bead count.
// Surrounding whitespace is ignored. Empty, non-numeric, negative and
// above-MaxBeads input returns a *ParseError.
func ParseCount(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &ParseError{Input: raw, Reason: "empty input"}
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{Input: raw, Reason: "not an integer"}
	}
	if n < 0 {
		return 0, &ParseError{Input: raw, Reason: "must not be negative"}
	}
	if n > MaxBeads {
		return 0, &ParseError{Input: raw, Reason: "too large"}
	}

	return n, nil
}

// Validate checks n against the lower bound.
func Validate(n int) Verdict {
	if n < MinBeads {
		return TooFew
	}
	return Valid
}

// Elements returns the design elements unlocked by n, sorted ascending.
// An empty slice means n is divisible by none of the table's divisors.
func Elements(n int) []DesignElement {
	out := []DesignElement{}
	for _, e := range divisorTable {
		if n%e.divisor == 0 {
			out = append(out, e.element)
		}
	}
	return out
}

// PlanFor returns the construction plan for n.
// The plan is only defined for n >= MinBeads; ok is false otherwise.
func PlanFor(n int) (plan Plan, ok bool) {
	if n < MinBeads {
		return Plan{}, false
	}
	toAdd := n / 3
	return Plan{StartingNumber: 2 * toAdd, BeadsToAdd: toAdd}, true
}

// Suggest produces the recommendation for n.
//
// Counts below MinBeads stop at the lower-bound check and yield OutcomeTooFew
// without running the search. Usable counts yield OutcomeDirect. Anything else
// yields OutcomeAlternatives with the nearest usable count above n and, when
// one exists strictly above MinBeads, the nearest usable count below n.
// n must not exceed MaxBeads.
func Suggest(n int) Result {
	if Validate(n) == TooFew {
		return Result{Beads: n, Outcome: OutcomeTooFew, Message: TooFewMessage}
	}

	if elements := Elements(n); len(elements) > 0 {
		plan, _ := PlanFor(n)
		return Result{
			Beads:    n,
			Outcome:  OutcomeDirect,
			Elements: elements,
			Plan:     &plan,
		}
	}

	higher := searchUp(n)
	return Result{
		Beads:   n,
		Outcome: OutcomeAlternatives,
		Message: NotDivisibleNotice,
		Higher:  &higher,
		Lower:   searchDown(n),
	}
}

// Evaluate parses raw input and returns its recommendation.
func Evaluate(raw string) (Result, error) {
	n, err := ParseCount(raw)
	if err != nil {
		return Result{}, err
	}
	return Suggest(n), nil
}

func searchUp(n int) Suggestion {
	for probe := n + 1; probe <= n+maxUpwardProbes; probe++ {
		if elements := Elements(probe); len(elements) > 0 {
			return Suggestion{Beads: probe, Elements: elements}
		}
	}
	panic(fmt.Sprintf("beads: no usable count within %d of %d", maxUpwardProbes, n))
}

// searchDown never offers MinBeads itself; probes stop once they reach it.
func searchDown(n int) *Suggestion {
	for probe := n - 1; probe > MinBeads; probe-- {
		if elements := Elements(probe); len(elements) > 0 {
			return &Suggestion{Beads: probe, Elements: elements}
		}
	}
	return nil
}
