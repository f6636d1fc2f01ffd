// Package app contains the core application logic: the App struct, its
// configuration, and the build-time wiring pipeline (load site and catalog,
// scan trees, resolve missing overlays, verify the runtime wiring),
// decoupled from any specific entrypoint like a CLI.
package app
