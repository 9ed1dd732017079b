// Package display holds pure, deterministic helpers that reshape API
// payloads for presentation: search filtering, event ordering, DTO shape
// adaptation, relative timestamps and feed labels. Nothing here performs
// I/O or mutates its input.
package display
