// Package floatingpanel is the built-in floating side panel feature.
package floatingpanel

import (
	"context"

	"github.com/pagecraft/pagewire/internal/action"
	"github.com/pagecraft/pagewire/internal/ctxlog"
)

// Feature implements action.Mountable for the floating panel.
type Feature struct{}

// FeatureID returns the catalog identifier for this feature.
func (f *Feature) FeatureID() string { return "FloatingPanel" }

// Mount registers the panel's open/close/toggle handlers under key.
func (f *Feature) Mount(ctx context.Context, key string, reg *action.Registry) {
	logger := ctxlog.FromContext(ctx)
	reg.Register(ctx, key+".open", func(p action.Payload) {
		logger.Info("Opening floating panel.", "key", key, "source", p.Source)
	})
	reg.Register(ctx, key+".close", func(p action.Payload) {
		logger.Info("Closing floating panel.", "key", key, "source", p.Source)
	})
	reg.Register(ctx, key+".toggle", func(p action.Payload) {
		logger.Info("Toggling floating panel.", "key", key, "source", p.Source)
	})
}

// Unmount removes the handlers registered by Mount.
func (f *Feature) Unmount(ctx context.Context, key string, reg *action.Registry) {
	reg.Unregister(ctx, key+".open")
	reg.Unregister(ctx, key+".close")
	reg.Unregister(ctx, key+".toggle")
}
