// Package restock models the compensating stock restore that follows an approved
// return. A Task is recorded together with the approval and applied afterwards, so a
// failed restore can be retried without restocking twice.
package restock

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

// Status is pending until the stock increment has been applied.
type Status string

const (
	Pending Status = "pending"
	Applied Status = "applied"
)

// Task restores Quantity units of a product for one approved return.
type Task struct {
	id            kernel.UUID
	orderID       kernel.UUID
	productID     kernel.UUID
	quantity      int
	status        Status
	attempts      int
	lastError     string
	createdAt     time.Time
	appliedAt     *time.Time
	isConstructed bool
}

// TaskID derives the task id from the order and product, so one return approval maps
// to exactly one task.
func TaskID(orderID, productID kernel.UUID) kernel.UUID {
	return kernel.DeriveUUID(orderID, "restock", productID.String())
}

// NewTask creates a pending task.
func NewTask(orderID, productID kernel.UUID, quantity int, now time.Time) (*Task, error) {
	return RestoreTask(TaskID(orderID, productID), orderID, productID, quantity, Pending, 0, "", now, nil)
}

// RestoreTask rebuilds a task from storage.
func RestoreTask(
	id, orderID, productID kernel.UUID,
	quantity int,
	status Status,
	attempts int,
	lastError string,
	createdAt time.Time,
	appliedAt *time.Time,
) (*Task, error) {
	var qtyErr, statusErr error
	if quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if status != Pending && status != Applied {
		statusErr = errs.NewValueIsInvalidErrorWithCause("restock status", fmt.Errorf("%q is not a restock status", string(status)))
	}
	if err := errors.Join(id.Validate(), orderID.Validate(), productID.Validate(), qtyErr, statusErr); err != nil {
		return nil, err
	}

	return &Task{
		id:            id,
		orderID:       orderID,
		productID:     productID,
		quantity:      quantity,
		status:        status,
		attempts:      attempts,
		lastError:     lastError,
		createdAt:     createdAt,
		appliedAt:     appliedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the task was built through a constructor.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

func (t *Task) ID() kernel.UUID        { return t.id }
func (t *Task) OrderID() kernel.UUID   { return t.orderID }
func (t *Task) ProductID() kernel.UUID { return t.productID }
func (t *Task) Quantity() int          { return t.quantity }
func (t *Task) Status() Status         { return t.status }
func (t *Task) Attempts() int          { return t.attempts }
func (t *Task) LastError() string      { return t.lastError }
func (t *Task) CreatedAt() time.Time   { return t.createdAt }
func (t *Task) AppliedAt() *time.Time  { return t.appliedAt }
