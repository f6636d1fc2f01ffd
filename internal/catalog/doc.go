// Package catalog holds the build-time metadata the wiring layer resolves
// against: feature descriptors (which action identifiers a mountable chrome
// feature can satisfy), widget capability metadata (which trigger events a
// node type supports and its default decorators), and decorator definitions
// (which features a decoration implies).
//
// Metadata is declared in .hcl manifest files. Feature declaration order is
// significant: it is the tie-break order when several features could
// provide the same action, so the loader keeps features in sorted-file,
// in-file order and the catalog preserves it.
package catalog
