// Package tariff contains the pricing configuration entities and the
// Quote value object.
//
// ServiceTier and ZoneTariff are read-mostly configuration data managed
// by platform admins. A Quote is the immutable price breakdown produced
// from them; once a quote is frozen onto a delivery, editing the
// configuration never changes the delivery's price.
package tariff
