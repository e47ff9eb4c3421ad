package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// ReturnStatus is requested until an administrator approves the return. There is no
// rejection state.
type ReturnStatus string

const (
	ReturnRequested ReturnStatus = "requested"
	ReturnApproved  ReturnStatus = "approved"
)

// ReturnRequest is keyed by product: an order holds at most one per product.
type ReturnRequest struct {
	productID   kernel.UUID
	status      ReturnStatus
	requestedAt time.Time
	approvedAt  *time.Time
}

// RestoreReturnRequest rebuilds a return request from storage.
func RestoreReturnRequest(productID kernel.UUID, status ReturnStatus, requestedAt time.Time, approvedAt *time.Time) ReturnRequest {
	return ReturnRequest{
		productID:   productID,
		status:      status,
		requestedAt: requestedAt,
		approvedAt:  approvedAt,
	}
}

func (r ReturnRequest) ProductID() kernel.UUID { return r.productID }
func (r ReturnRequest) Status() ReturnStatus   { return r.status }
func (r ReturnRequest) RequestedAt() time.Time { return r.requestedAt }
func (r ReturnRequest) ApprovedAt() *time.Time { return r.approvedAt }

// ReturnOutcome is the result of an approved return.
type ReturnOutcome struct {
	ProductID    kernel.UUID
	ItemName     string
	Quantity     int
	RefundAmount kernel.Money
}
