package beads

import (
	"errors"
	"fmt"
)

// MinBeads is the smallest bead count a project can be built from.
const MinBeads = 12

// MaxBeads is the largest bead count ParseCount accepts.
const MaxBeads = 1_000_000

// Fixed user-facing messages.
const (
	TooFewMessage      = "Please re-try using more than 12 beads."
	NotDivisibleNotice = "Please pick a number that is divisible by 6 or 9."
)

// DesignElement is a short/long pattern width pair available for a divisor.
type DesignElement struct {
	Short int `json:"short"`
	Long  int `json:"long"`
}

// String renders the pair the way the results page shows it, e.g. "(3, 5)".
func (d DesignElement) String() string {
	return fmt.Sprintf("(%d, %d)", d.Short, d.Long)
}

// divisorEntry binds a divisor to the design element it unlocks.
type divisorEntry struct {
	divisor int
	element DesignElement
}

// divisorTable is ordered by divisor so pass sets come out already sorted.
var divisorTable = [...]divisorEntry{
	{divisor: 6, element: DesignElement{Short: 3, Long: 5}},
	{divisor: 9, element: DesignElement{Short: 4, Long: 7}},
	{divisor: 12, element: DesignElement{Short: 5, Long: 9}},
}

// Divisors returns the divisors of the design table in ascending order.
func Divisors() []int {
	out := make([]int, 0, len(divisorTable))
	for _, e := range divisorTable {
		out = append(out, e.divisor)
	}
	return out
}

// Plan is the three-drop construction plan for a usable bead count.
type Plan struct {
	StartingNumber int `json:"starting_number"`
	BeadsToAdd     int `json:"beads_to_add"`
}

// Suggestion is a nearby usable bead count and the design elements it allows.
type Suggestion struct {
	Beads    int             `json:"beads"`
	Elements []DesignElement `json:"elements"`
}

// Verdict is the outcome of the lower-bound check.
type Verdict int

const (
	// Valid means the count is at least MinBeads.
	Valid Verdict = iota
	// TooFew means the count is below MinBeads.
	TooFew
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case TooFew:
		return "too_few"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Outcome identifies which kind of Result was produced.
type Outcome string

const (
	OutcomeDirect       Outcome = "direct"
	OutcomeAlternatives Outcome = "alternatives"
	OutcomeTooFew       Outcome = "too_few"
)

// Result is the complete answer for one bead count.
//
// Exactly one shape is populated per Outcome:
//   - OutcomeDirect: Elements and Plan
//   - OutcomeAlternatives: Higher, optionally Lower, and Message (advisory)
//   - OutcomeTooFew: Message
type Result struct {
	Beads    int             `json:"beads"`
	Outcome  Outcome         `json:"outcome"`
	Message  string          `json:"message,omitempty"`
	Elements []DesignElement `json:"elements,omitempty"`
	Plan     *Plan           `json:"plan,omitempty"`
	Higher   *Suggestion     `json:"higher,omitempty"`
	Lower    *Suggestion     `json:"lower,omitempty"`
}

// ErrParse is matched by every bead count parse failure.
var ErrParse = errors.New("invalid bead count")

// ParseError reports raw input that is not a usable integer literal.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid bead count %q: %s", e.Input, e.Reason)
}

// Is lets errors.Is(err, ErrParse) match any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
