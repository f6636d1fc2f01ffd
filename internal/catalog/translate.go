package catalog

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// translateFeature converts the HCL-specific feature schema into the
// agnostic catalog model, evaluating default parameter values.
func translateFeature(fb *hclFeature) (*Feature, error) {
	f := &Feature{
		ID:              fb.ID,
		Description:     fb.Description,
		ProvidesActions: fb.ProvidesActions,
	}

	if fb.Defaults != nil {
		attrs, diags := fb.Defaults.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("defaults block of feature %q: %w", fb.ID, diags)
		}
		f.Defaults = make(map[string]cty.Value, len(attrs))
		for name, attr := range attrs {
			val, valDiags := attr.Expr.Value(nil)
			if valDiags.HasErrors() {
				return nil, fmt.Errorf("default %q of feature %q: %w", name, fb.ID, valDiags)
			}
			f.Defaults[name] = val
		}
	}

	return f, nil
}

// translateWidget converts the HCL-specific widget schema into the agnostic
// catalog model.
func translateWidget(wb *hclWidget) *Widget {
	return &Widget{
		Type:              wb.Type,
		Description:       wb.Description,
		TriggerEvents:     wb.TriggerEvents,
		DefaultDecorators: wb.Decorators,
	}
}

// translateDecorator converts the HCL-specific decorator schema into the
// agnostic catalog model.
func translateDecorator(db *hclDecorator) *Decorator {
	return &Decorator{
		ID:               db.ID,
		Description:      db.Description,
		RequiresFeatures: db.RequiresFeatures,
	}
}
