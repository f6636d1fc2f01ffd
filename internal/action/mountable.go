package action

import "context"

// Mountable is the contract a chrome feature implements to participate in
// runtime wiring: on mount it registers a handler for every action it
// provides under its instance key, and on unmount it removes exactly what
// it registered.
type Mountable interface {
	// FeatureID is the catalog identifier, e.g. "VideoModal".
	FeatureID() string
	// Mount registers the feature's handlers under key ("{key}.{verb}").
	Mount(ctx context.Context, key string, reg *Registry)
	// Unmount removes the handlers registered by Mount for key.
	Unmount(ctx context.Context, key string, reg *Registry)
}
