// Package resolve matches the action identifiers a page requires against
// the feature catalog and decides which chrome features must be injected so
// that every declared action has a provider at render time.
//
// Resolution is a pure set reconciliation: given required actions and the
// feature keys already configured on a page, it synthesizes new (key,
// feature) bindings without duplicating keys or features. "No provider
// found" and "key already claimed" are normal outcomes, never errors —
// flagging unprovided actions as configuration mistakes belongs to
// validation tooling, not here.
package resolve
