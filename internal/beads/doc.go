// Package beads computes bead-count recommendations for three-drop peyote
// stitch projects.
//
// # Overview
//
// A bead count is usable when it is at least MinBeads and divisible by one of
// the divisors in the design table (6, 9 or 12). Each matching divisor
// contributes a short/long design element pair that tells the beader which
// decorative pattern widths fit evenly around the project.
//
// When the count is usable, Suggest returns a direct recommendation with the
// matching design elements and a construction plan (how many beads to start
// with and how many to add). When it is not, Suggest searches outward for the
// nearest usable counts above and below and reports their design elements.
//
// # Usage Example
//
//	result, err := beads.Evaluate(" 13 ")
//	if err != nil {
//	    // errors.Is(err, beads.ErrParse)
//	}
//	switch result.Outcome {
//	case beads.OutcomeDirect:
//	    fmt.Println(result.Plan.StartingNumber, result.Plan.BeadsToAdd)
//	case beads.OutcomeAlternatives:
//	    fmt.Println(result.Higher.Beads)
//	case beads.OutcomeTooFew:
//	    fmt.Println(result.Message)
//	}
//
// Everything in this package is pure: the same input always yields the same
// Result and no state is shared between calls.
package beads
