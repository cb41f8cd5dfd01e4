// Package manager holds the actors of the delivery lifecycle: the
// platform Admin and zone-scoped ZoneManagers.
//
// Authorization is deliberately narrow. Every check reduces to a single
// question, "may this actor act on this zone", answered by
// Actor.AuthorizeZone against the delivery's frozen zone. Admins always
// may; zone managers only for their own zone; everything else fails
// closed with ErrZoneForbidden.
package manager
