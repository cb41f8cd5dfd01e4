// Package services contains stateless domain services that operate
// across aggregates.
//
// TariffCalculator turns a zone tariff, a service tier and a weight
// into a Quote. Keeping the arithmetic here, outside the aggregates,
// means both ad-hoc quoting and delivery creation price through the
// exact same code path.
package services
