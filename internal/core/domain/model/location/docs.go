// Package location contains the Location entity: a city or regency record
// that serves as a shipping endpoint. Every location carries a mandatory
// zone assignment, which is the partition key for both tariff pricing and
// shipping-manager authorization.
package location
