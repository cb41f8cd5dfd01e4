// Package delivery contains the Delivery aggregate and its generalized
// status state machine.
//
// A Delivery is either a food order or one of five delivery-service
// request variants; the Kind discriminator selects which of the two
// status tracks the delivery moves along. Both tracks are edge sets of
// one parameterized state machine, so transition legality lives in a
// single place.
//
// Two values freeze at creation and never change: the price snapshot
// (the Quote the customer accepted) and the delivery zone (derived from
// the pickup location, the sole basis for zone-scoped authorization).
package delivery
