// Package domain provides canonical type definitions for Diversion client entities.
//
// This is a pure data structure library: entities are DTOs received from the
// Diversion REST API, which owns their canonical lifecycle. The package has no
// dependencies beyond the standard library and contains no business logic,
// constructors, or validation functions. All entities carry JSON struct tags
// matching the wire format of the API.
//
// Optional fields use pointer or zero-value-meaningful types:
//
//	Description string       // optional: empty = not provided
//	Interest    *InterestRef // optional: nil = not populated
//
// Enumerations are string-typed for debuggability and natural JSON
// serialization:
//
//	status := domain.RSVPGoing
//	fmt.Println(status.String()) // "Going"
package domain
