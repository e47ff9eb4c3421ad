package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a customer purchase. It owns the items, the delivery
// journey, the return requests and the status history, and references stations and
// the delivery agent by id.
//
// Order follows these invariants:
//   - totalAmount equals the sum of the remaining line totals
//   - the journey, once planned, keeps exactly one stage in progress
//   - a product is either still in items or its return is approved, never both
//   - the status history only grows
//
// Every mutating method refreshes updatedAt. The version is owned by the repository
// and used as a compare-and-swap guard on writes.
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	items         []Item
	totalAmount   kernel.Money
	status        Status
	address       ShippingAddress
	paymentMethod string

	journey  *Journey
	stations *AssignedStations
	agent    *AgentContact
	returns  []ReturnRequest
	history  []StatusEntry
	tracking Tracking

	deliveryProof string
	assignedAt    *time.Time
	pickedUpAt    *time.Time
	onTheWayAt    *time.Time
	deliveredAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time

	version int64
	events  []StatusChanged

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an order in order_placed status with one history entry.
// The total is computed from the items.
//
// Example:
//
//	address, _ := order.NewShippingAddress("Jane Doe", "1 Main St", "Austin", "TX", "73301", nil)
//	item, _ := order.NewItem(productID, "Mug", kernel.Money(1250), 2, "")
//	o, err := order.NewOrder(kernel.NewUUID(), userID, []order.Item{item}, address, "card", time.Now())
func NewOrder(
	id, userID kernel.UUID,
	items []Item,
	address ShippingAddress,
	paymentMethod string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        OrderPlaced,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.history = []StatusEntry{{status: OrderPlaced, timestamp: now, description: OrderPlaced.Description()}}
	return o, nil
}

// Snapshot is the full persisted state of an order, used by RestoreOrder.
type Snapshot struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	Items         []Item
	TotalAmount   kernel.Money
	Status        Status
	Address       ShippingAddress
	PaymentMethod string
	Journey       *Journey
	Stations      *AssignedStations
	Agent         *AgentContact
	Returns       []ReturnRequest
	History       []StatusEntry
	Tracking      Tracking
	DeliveryProof string
	AssignedAt    *time.Time
	PickedUpAt    *time.Time
	OnTheWayAt    *time.Time
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

// RestoreOrder rebuilds an order from storage. Items may be empty after returns,
// but the total must still match them.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		items:         append([]Item(nil), s.Items...),
		totalAmount:   s.TotalAmount,
		journey:       s.Journey,
		stations:      s.Stations,
		agent:         s.Agent,
		returns:       append([]ReturnRequest(nil), s.Returns...),
		history:       append([]StatusEntry(nil), s.History...),
		tracking:      s.Tracking,
		deliveryProof: s.DeliveryProof,
		assignedAt:    s.AssignedAt,
		pickedUpAt:    s.PickedUpAt,
		onTheWayAt:    s.OnTheWayAt,
		deliveredAt:   s.DeliveredAt,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		version:       s.Version,
		isConstructed: true,
	}

	var totalErr error
	if sum := sumLineTotals(o.items); sum != s.TotalAmount {
		totalErr = errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d does not match line totals %d", s.TotalAmount, sum))
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setUserID(s.UserID),
		o.setAddress(s.Address),
		o.setPaymentMethod(s.PaymentMethod),
		s.Status.Validate(),
		totalErr,
	); err != nil {
		return nil, err
	}
	o.status = s.Status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                     { return o.id }
func (o *Order) UserID() kernel.UUID                 { return o.userID }
func (o *Order) TotalAmount() kernel.Money           { return o.totalAmount }
func (o *Order) Status() Status                      { return o.status }
func (o *Order) ShippingAddress() ShippingAddress    { return o.address }
func (o *Order) PaymentMethod() string               { return o.paymentMethod }
func (o *Order) Journey() *Journey                   { return o.journey }
func (o *Order) AssignedStations() *AssignedStations { return o.stations }
func (o *Order) Agent() *AgentContact                { return o.agent }
func (o *Order) Tracking() Tracking                  { return o.tracking }
func (o *Order) DeliveryProof() string               { return o.deliveryProof }
func (o *Order) AssignedAt() *time.Time              { return o.assignedAt }
func (o *Order) PickedUpAt() *time.Time              { return o.pickedUpAt }
func (o *Order) OnTheWayAt() *time.Time              { return o.onTheWayAt }
func (o *Order) DeliveredAt() *time.Time             { return o.deliveredAt }
func (o *Order) CreatedAt() time.Time                { return o.createdAt }
func (o *Order) UpdatedAt() time.Time                { return o.updatedAt }
func (o *Order) Version() int64                      { return o.version }

// Items returns a copy of the remaining order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Returns returns a copy of the return requests.
func (o *Order) Returns() []ReturnRequest {
	return append([]ReturnRequest(nil), o.returns...)
}

// StatusHistory returns a copy of the status history.
func (o *Order) StatusHistory() []StatusEntry {
	return append([]StatusEntry(nil), o.history...)
}

// OrderNumber is the human-readable code shown to customers.
func (o *Order) OrderNumber() string {
	return o.id.ShortCode()
}

// IncrementVersion is called by repositories after a successful write.
func (o *Order) IncrementVersion() {
	o.version++
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	return append([]StatusChanged(nil), o.events...)
}

// ClearDomainEvents drops recorded events once they have been published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// UpdateStatus sets one of the customer-facing statuses and appends a history
// entry. An empty description falls back to the status default.
func (o *Order) UpdateStatus(status Status, description string, now time.Time) (StatusEntry, error) {
	if _, ok := manualStatuses[status]; !ok {
		return StatusEntry{}, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%w: %q", ErrInvalidStatus, string(status)))
	}
	if strings.TrimSpace(description) == "" {
		description = status.Description()
	}

	return o.changeStatus(status, description, now), nil
}

// RequestReturn opens a return for productID. Existing returns are checked before
// the items, so a product whose return was already approved, and which is therefore
// no longer in the order, reports ErrDuplicateReturn rather than ErrProductNotInOrder.
func (o *Order) RequestReturn(productID kernel.UUID, now time.Time) (ReturnRequest, error) {
	if err := productID.Validate(); err != nil {
		return ReturnRequest{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if _, ok := o.findReturn(productID); ok {
		return ReturnRequest{}, errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%w: %s", ErrDuplicateReturn, productID))
	}
	if _, ok := o.findItem(productID); !ok {
		return ReturnRequest{}, errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%w: %s", ErrProductNotInOrder, productID))
	}

	r := ReturnRequest{productID: productID, status: ReturnRequested, requestedAt: now}
	o.returns = append(o.returns, r)
	o.updatedAt = now
	return r, nil
}

// ApproveReturn approves the return for productID, removes the item and decrements
// the total by the item's current price times quantity. Either all of these apply or
// none does.
func (o *Order) ApproveReturn(productID kernel.UUID, now time.Time) (ReturnOutcome, error) {
	ri, ok := o.findReturn(productID)
	if !ok {
		return ReturnOutcome{}, errs.NewObjectNotFoundErrorWithCause("return", productID, ErrReturnNotFound)
	}
	if o.returns[ri].status == ReturnApproved {
		return ReturnOutcome{}, errs.NewValueIsInvalidErrorWithCause("return",
			fmt.Errorf("%w: %s", ErrAlreadyApproved, productID))
	}
	ii, ok := o.findItem(productID)
	if !ok {
		return ReturnOutcome{}, errs.NewObjectNotFoundErrorWithCause("item", productID, ErrItemNotFound)
	}

	item := o.items[ii]
	refund := item.LineTotal()

	o.returns[ri].status = ReturnApproved
	o.returns[ri].approvedAt = &now
	o.items = append(o.items[:ii:ii], o.items[ii+1:]...)
	o.totalAmount -= refund
	o.updatedAt = now

	return ReturnOutcome{
		ProductID:    productID,
		ItemName:     item.name,
		Quantity:     item.quantity,
		RefundAmount: refund,
	}, nil
}

// RoutingCity returns the normalized shipping city used to pick stations. It fails with
// ErrNotReady outside order_placed or once the order was routed, and with ErrMissingCity
// when the address has none.
func (o *Order) RoutingCity() (string, error) {
	if err := o.validateRoutable(); err != nil {
		return "", err
	}
	city := o.address.NormalizedCity()
	if city == "" {
		return "", errs.NewValueIsRequiredErrorWithCause("city", ErrMissingCity)
	}
	return city, nil
}

// PlanJourney attaches a freshly planned journey and its stations. The order must be
// in order_placed status and moves to fulfillment_processing. Journey and stations are
// set once: an order put back to order_placed by hand cannot be planned again.
func (o *Order) PlanJourney(journey Journey, stations AssignedStations, now time.Time) error {
	if err := o.validateRoutable(); err != nil {
		return err
	}
	if err := journey.validate(); err != nil {
		return err
	}

	o.journey = &journey
	o.stations = &stations
	o.changeStatus(FulfillmentProcessing, journey.Current().description, now)
	return nil
}

// AdvanceStage completes the current stage and starts the next one. The new status is
// derived from the next stage name. Advancing is not possible while an agent holds
// the order or once it is delivered or cancelled.
func (o *Order) AdvanceStage(now time.Time) (StageTransition, error) {
	if o.journey == nil {
		return StageTransition{}, errs.NewObjectNotFoundErrorWithCause("journey", o.id, ErrNoJourney)
	}
	next, err := o.journey.advance(now)
	if err != nil {
		return StageTransition{}, err
	}
	if o.status.IsAgentHeld() || o.status.IsFinal() {
		return StageTransition{}, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%w: cannot advance stage in %s", ErrNotReady, o.status))
	}

	from := o.journey.Current()

	o.journey = &next
	to := next.Current()
	newStatus := to.name.OrderStatus()
	o.changeStatus(newStatus, to.description, now)

	return StageTransition{From: from, To: to, Index: next.current, NewStatus: newStatus}, nil
}

// ValidateAssign reports whether an agent can be assigned: the order must be
// waiting_for_agent and routed to a local station.
func (o *Order) ValidateAssign() error {
	if o.status != WaitingForAgent {
		return o.notReady(WaitingForAgent)
	}
	if o.stations == nil {
		return errs.NewValueIsRequiredErrorWithCause("local station", ErrNoLocalStation)
	}
	return nil
}

// AssignAgent hands the order to an agent. The order must be waiting_for_agent.
func (o *Order) AssignAgent(agent AgentContact, now time.Time) error {
	if err := o.ValidateAssign(); err != nil {
		return err
	}
	if err := agent.id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agent", err)
	}

	o.agent = &agent
	o.assignedAt = &now
	o.changeStatus(AgentAssigned, AgentAssigned.Description(), now)
	return nil
}

// PickUp records that the assigned agent collected the package.
func (o *Order) PickUp(agentID kernel.UUID, now time.Time) error {
	if err := o.requireAgentIn(agentID, AgentAssigned); err != nil {
		return err
	}

	o.pickedUpAt = &now
	o.changeStatus(PickedUp, PickedUp.Description(), now)
	return nil
}

// StartDelivery moves a picked up order on its way. When the journey still sits at
// agent_assignment it advances into the final out_for_delivery stage.
func (o *Order) StartDelivery(agentID kernel.UUID, now time.Time) error {
	if err := o.requireAgentIn(agentID, PickedUp); err != nil {
		return err
	}

	if o.journey != nil && !o.journey.IsAtFinal() && o.journey.Current().name == StageAgentAssignment {
		next, err := o.journey.advance(now)
		if err != nil {
			return err
		}
		o.journey = &next
	}

	o.onTheWayAt = &now
	o.changeStatus(OnTheWay, OnTheWay.Description(), now)
	return nil
}

// Complete marks the order delivered by its agent with an optional proof.
func (o *Order) Complete(agentID kernel.UUID, proof string, now time.Time) error {
	if err := o.requireAgentIn(agentID, OnTheWay); err != nil {
		return err
	}

	o.deliveryProof = proof
	o.deliveredAt = &now
	o.changeStatus(Delivered, Delivered.Description(), now)
	return nil
}

// TrackAgent refreshes the live tracking cache from the agent position. It is only
// valid while an agent holds the order and the shipping address has coordinates.
func (o *Order) TrackAgent(location kernel.GeoPoint, speedKmh float64, now time.Time) error {
	if !o.status.IsAgentHeld() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%w: no active delivery in %s", ErrNotReady, o.status))
	}
	if err := location.Validate(); err != nil {
		return err
	}
	if speedKmh <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("speed", fmt.Errorf("%v is not greater than 0", speedKmh))
	}
	destination := o.address.coordinates
	if destination == nil {
		return errs.NewValueIsRequiredErrorWithCause("coordinates", ErrNoDestination)
	}

	distance, eta := EstimateArrival(location, *destination, speedKmh, now)
	o.tracking = Tracking{
		agentLocation:       &location,
		distanceRemainingKm: &distance,
		estimatedArrival:    &eta,
		lastUpdate:          &now,
	}
	o.updatedAt = now
	return nil
}

func (o *Order) changeStatus(status Status, description string, now time.Time) StatusEntry {
	entry := StatusEntry{status: status, timestamp: now, description: description}
	from := o.status
	o.status = status
	o.history = append(o.history, entry)
	o.updatedAt = now
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		UserID:     o.userID,
		From:       from,
		To:         status,
		OccurredAt: now,
	})
	return entry
}

func (o *Order) requireAgentIn(agentID kernel.UUID, status Status) error {
	if o.agent == nil || !o.agent.id.IsEqual(agentID) || o.status != status {
		return errs.NewObjectNotFoundErrorWithCause("order", o.id,
			fmt.Errorf("%w: want %s", ErrAgentMismatch, status))
	}
	return nil
}

func (o *Order) validateRoutable() error {
	if o.status != OrderPlaced {
		return o.notReady(OrderPlaced)
	}
	if o.journey != nil || o.stations != nil {
		return errs.NewValueIsInvalidErrorWithCause("journey",
			fmt.Errorf("%w: order was already routed", ErrNotReady))
	}
	return nil
}

func (o *Order) notReady(want Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%w: status is %s, want %s", ErrNotReady, o.status, want))
}

func (o *Order) findItem(productID kernel.UUID) (int, bool) {
	for i, item := range o.items {
		if item.productID.IsEqual(productID) {
			return i, true
		}
	}
	return -1, false
}

func (o *Order) findReturn(productID kernel.UUID) (int, bool) {
	for i, r := range o.returns {
		if r.productID.IsEqual(productID) {
			return i, true
		}
	}
	return -1, false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.productID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("product %s appears more than once", item.productID))
		}
		seen[item.productID] = struct{}{}
	}
	o.items = append([]Item(nil), items...)
	o.totalAmount = sumLineTotals(o.items)
	return nil
}

func (o *Order) setAddress(address ShippingAddress) error {
	if address.fullName == "" || address.address == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if strings.TrimSpace(method) == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = method
	return nil
}

func sumLineTotals(items []Item) kernel.Money {
	var total kernel.Money
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}
