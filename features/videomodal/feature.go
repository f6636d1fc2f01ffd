// Package videomodal is the built-in full-screen video lightbox feature.
// Its visual behavior lives in the rendering layer; this package only wires
// its open/close actions into the runtime registry.
package videomodal

import (
	"context"

	"github.com/pagecraft/pagewire/internal/action"
	"github.com/pagecraft/pagewire/internal/ctxlog"
)

// Feature implements action.Mountable for the video modal.
type Feature struct{}

// FeatureID returns the catalog identifier for this feature.
func (f *Feature) FeatureID() string { return "VideoModal" }

// Mount registers the modal's open/close handlers under key.
func (f *Feature) Mount(ctx context.Context, key string, reg *action.Registry) {
	logger := ctxlog.FromContext(ctx)
	reg.Register(ctx, key+".open", func(p action.Payload) {
		logger.Info("Opening video modal.", "key", key, "source", p.Source, "event", p.Event)
	})
	reg.Register(ctx, key+".close", func(p action.Payload) {
		logger.Info("Closing video modal.", "key", key, "source", p.Source)
	})
}

// Unmount removes the handlers registered by Mount.
func (f *Feature) Unmount(ctx context.Context, key string, reg *action.Registry) {
	reg.Unregister(ctx, key+".open")
	reg.Unregister(ctx, key+".close")
}
