// Package page defines the declarative UI-node tree that authoring tools
// emit and the build-time pipeline consumes: a site of pages, each page a
// list of sections, each section a recursive tree of nodes carrying event
// bindings and decorator references.
//
// The model is deliberately typed. Bindings in particular keep their
// "string or object" source shape as an explicit tagged variant instead of
// a runtime type switch, so downstream code never re-inspects raw JSON.
//
// Page documents are JSON (the native authoring format) or YAML; both are
// decoded through the same path. Trees come from serialization formats that
// cannot express back-references, which is what guarantees the acyclicity
// the scanner relies on.
package page
