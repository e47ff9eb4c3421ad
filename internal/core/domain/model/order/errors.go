package order

import "errors"

// Domain errors. They are wrapped by the errs types, so callers can match either the
// kind (errs.ErrObjectNotFound, errs.ErrValueIsInvalid) or the detail below.
var (
	ErrNotReady          = errors.New("order is not in the required status")
	ErrAlreadyFinal      = errors.New("order is already at its final stage")
	ErrNoJourney         = errors.New("order has no delivery journey")
	ErrMissingCity       = errors.New("shipping address has no city")
	ErrNoLocalStation    = errors.New("order has no local station")
	ErrDuplicateReturn   = errors.New("return already requested for this item")
	ErrReturnNotFound    = errors.New("return request not found")
	ErrAlreadyApproved   = errors.New("return already approved")
	ErrItemNotFound      = errors.New("item not found in order")
	ErrProductNotInOrder = errors.New("product not found in order")
	ErrAgentMismatch     = errors.New("order is not held by this agent in the expected status")
	ErrNoDestination     = errors.New("shipping address has no coordinates")
)
