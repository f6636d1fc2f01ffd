// Package action implements the runtime action registry: a process-wide
// mapping from namespaced action identifiers (e.g. "modal.open") to the
// single handler currently responsible for them.
//
// Mounted chrome features register their handlers when they mount and
// unregister them on teardown; rendered UI nodes execute identifiers when
// their declared events fire. An execute against an identifier with no
// handler degrades to a no-op so that pages which do not include an
// optional feature never hard-fail — the only visible symptom is an element
// that does nothing, which is the intended graceful behavior.
//
// There is at most one handler per identifier; registering again under the
// same identifier replaces the previous handler without error. Callers own
// their teardown and must unregister what they registered.
package action
