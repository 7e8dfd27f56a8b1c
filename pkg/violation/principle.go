package violation

import "github.com/matzehuels/mainseq/pkg/errors"

// Predicate reports whether the edge outer -> inner violates a principle,
// given the metric values of both ends.
type Predicate func(outer, inner float64) bool

// Principle is a named violation predicate.
type Principle struct {
	Name     string      // Human-readable principle name
	Code     errors.Code // Error code carried by violations
	Violates Predicate
}

// SDP is the Stable Dependencies Principle over instability: a component must
// not depend on something less stable than itself.
var SDP = Principle{
	Name:     "stable dependencies principle",
	Code:     errors.ErrCodeSDPViolation,
	Violates: func(outer, inner float64) bool { return outer < inner },
}

// SAP is the Stable Abstractions Principle over abstractness: a component
// must not be more abstract than something it depends on.
var SAP = Principle{
	Name:     "stable abstraction principle",
	Code:     errors.ErrCodeSAPViolation,
	Violates: func(outer, inner float64) bool { return outer > inner },
}
