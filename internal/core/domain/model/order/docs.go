// Package order contains the Order aggregate and the value objects it owns.
//
// An Order carries its items and total, customer-facing status, delivery journey,
// assigned stations, agent contact, return requests and an append-only status
// history. All of them are embedded in the aggregate and never shared.
//
// # Status model
//
// The customer-facing set is order_placed, shipped, out_for_delivery, delivered
// and cancelled. Routed delivery produces finer values
// (fulfillment_processing, regional_transit, local_station, waiting_for_agent,
// agent_assigned, picked_up, on_the_way, in_transit); Status.Coarse folds them
// back onto the customer-facing set.
//
//	order_placed ──plan──> fulfillment_processing ──advance──> ... ──> waiting_for_agent
//	waiting_for_agent ──assign──> agent_assigned ──pickup──> picked_up
//	picked_up ──start──> on_the_way ──complete──> delivered
//
// # Journey invariant
//
// Exactly one stage is in_progress (the current one), every earlier stage is
// completed and every later stage is pending. Journey enforces this on every
// transition and on restore.
//
// # Ledger invariant
//
// TotalAmount always equals the sum of the line totals of the remaining items.
// ApproveReturn removes the item and decrements the total in the same call.
//
// Every status change records a StatusChanged event, drained by the unit of work
// after commit.
package order
