// Package kernel holds the value objects shared by every storefront aggregate.
//
//   - UUID: entity identifier wrapping github.com/google/uuid
//   - GeoPoint: a latitude/longitude pair with haversine distance
//   - Money: an exact amount in minor currency units
//
// All values are immutable. Zero values of UUID and GeoPoint fail Validate so that
// aggregates can detect fields that were never set.
package kernel
