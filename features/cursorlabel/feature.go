// Package cursorlabel is the built-in cursor-follow label feature. Only its
// action wiring lives here; the follow animation belongs to the renderer.
package cursorlabel

import (
	"context"

	"github.com/pagecraft/pagewire/internal/action"
	"github.com/pagecraft/pagewire/internal/ctxlog"
)

// Feature implements action.Mountable for the cursor label.
type Feature struct{}

// FeatureID returns the catalog identifier for this feature.
func (f *Feature) FeatureID() string { return "CursorLabel" }

// Mount registers the label's show/hide handlers under key.
func (f *Feature) Mount(ctx context.Context, key string, reg *action.Registry) {
	logger := ctxlog.FromContext(ctx)
	reg.Register(ctx, key+".show", func(p action.Payload) {
		logger.Info("Showing cursor label.", "key", key, "source", p.Source)
	})
	reg.Register(ctx, key+".hide", func(p action.Payload) {
		logger.Info("Hiding cursor label.", "key", key, "source", p.Source)
	})
}

// Unmount removes the handlers registered by Mount.
func (f *Feature) Unmount(ctx context.Context, key string, reg *action.Registry) {
	reg.Unregister(ctx, key+".show")
	reg.Unregister(ctx, key+".hide")
}
