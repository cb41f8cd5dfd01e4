// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds the building blocks every aggregate relies on:
//   - Zone: the closed five-member geographic enumeration
//   - Weight: validated shipment weight in kilograms
//   - UUID: identity wrapper around github.com/google/uuid
//
// All kernel types are immutable value objects created through
// validating constructors; zero values fail validation.
package kernel
