// Package store implements resilient operations against the local
// filesystem: deletion, copy, content-aware replace, atomic
// overwrite-and-delete, temporary resource allocation, and free-space
// checks.
//
// The host filesystem is treated as unreliable. Files may be briefly
// locked by antivirus scanners or concurrent writers, carry read-only
// attributes, or sit on a nearly-full volume. Every mutating operation
// retries transient failures according to a retry.Policy and guarantees
// that a reported success never leaves a target truncated or partially
// written.
//
// Platform-specific behavior (atomic file replace, free-space queries)
// lives behind the Platform interface with one implementation per
// target OS.
package store
