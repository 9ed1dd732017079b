// Package flow implements the stateful client sequences that sit between
// the raw API services and a front end: the interest-selection onboarding
// flow, the per-event RSVP flow, the debounced friend search, and the
// small coordination helpers they share (sequential batches, joint
// concurrent loads).
//
// Flows depend on narrow interfaces rather than the concrete client, so
// tests drive them with fakes and any front end can wrap them. Unless a
// type documents otherwise, flows are driven from a single UI goroutine.
package flow
