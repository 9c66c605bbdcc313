// Package diag defines the core diagnostic model shared by all phases of
// call finalization.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by inference replay, the finalizer itself and the
//     registered call checkers.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering responsibilities live in
// internal/diagfmt; orchestration lives in the driver layer.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity - tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code - compact numeric identifier (see codes.go) with stable string form.
//   - Message - human oriented text; keep it short and actionable.
//   - Primary span - the canonical source.Span pointing to the issue.
//   - Notes - optional secondary spans/messages for additional context.
//
// Code blocks are grouped by producer: INF1xxx for diagnostics attached by
// constraint solving, RES2xxx for the finalizer's own reports, CHK3xxx for
// call checkers, IO4xxx for the driver, OBS5xxx for observability output.
package diag
