package violation

import (
	"fmt"

	"github.com/matzehuels/mainseq/pkg/errors"
)

// Violation is the failure outcome of Check. It names the offending
// component and the violated principle; the dependency that triggered it is
// deliberately not reported.
type Violation struct {
	Principle Principle
	Component string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("Component %s is violating the %s", v.Component, v.Principle.Name)
}

// Code returns the principle's error code, making violations visible to
// errors.Is and errors.GetCode.
func (v *Violation) Code() errors.Code { return v.Principle.Code }

// IsSDP reports whether the violated principle is the Stable Dependencies
// Principle.
func (v *Violation) IsSDP() bool { return v.Principle.Code == errors.ErrCodeSDPViolation }

// IsSAP reports whether the violated principle is the Stable Abstractions
// Principle.
func (v *Violation) IsSAP() bool { return v.Principle.Code == errors.ErrCodeSAPViolation }
