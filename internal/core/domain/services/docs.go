// Package services provides domain services that coordinate orders with the delivery
// network. They implement workflows that don't naturally belong to a single aggregate
// root and never touch storage: callers load the aggregates, hand them over and
// persist the result.
//
// The package includes:
//   - JourneyPlanner: builds the stage list of an order from the stations serving its city
//   - AgentDispatcher: picks an available agent and assigns it to a waiting order
package services
