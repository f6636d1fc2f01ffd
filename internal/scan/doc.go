// Package scan walks declarative UI-node trees and derives the inputs the
// rest of the wiring layer needs: the set of action identifiers a tree
// references, the inventory of nodes that can emit trigger events, the
// overlay features implied by decorator references, and the per-section
// usage map of preset actions.
//
// Every function here is a pure derivation over its inputs; nothing is
// cached or mutated between calls, so scans for different pages may run
// concurrently. Trees are visited depth-first and each node exactly once —
// acyclicity is guaranteed by construction, since trees come from
// serialization formats that cannot express back-references.
package scan
