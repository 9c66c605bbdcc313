// Package resolve finalizes completed call resolutions: it materializes the
// immutable resolved-call views the rest of the front end queries, maps
// value arguments onto formal parameters (vararg grouping and defaulted
// parameters included), reconciles provisionally recorded argument types
// with the final inferred ones, replays the diagnostics constraint solving
// attached to a call, and drives the registered call checkers.
//
// The package consumes what inference produced and never re-validates it:
// candidates, completed calls, descriptors and flow-state snapshots are
// immutable inputs. Expected divergences (unmapped arguments, positional
// gaps, non-denotable literal types, under-reporting diagnostics) are
// modeled as explicit result variants, never as panics; upstream contract
// breaches (type-argument arity) fail fast.
package resolve
