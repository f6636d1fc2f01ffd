package catalog

import (
	"github.com/hashicorp/hcl/v2"
)

// hclDefaults represents the content of the 'defaults' block of a feature.
type hclDefaults struct {
	Body hcl.Body `hcl:",remain"`
}

// hclFeature represents a `feature` block from a catalog manifest.
type hclFeature struct {
	ID              string       `hcl:"id,label"`
	Description     string       `hcl:"description,optional"`
	ProvidesActions []string     `hcl:"provides_actions"`
	Defaults        *hclDefaults `hcl:"defaults,block"`
}

// hclWidget represents a `widget` block declaring a node type's
// capability metadata.
type hclWidget struct {
	Type          string   `hcl:"type,label"`
	Description   string   `hcl:"description,optional"`
	TriggerEvents []string `hcl:"trigger_events,optional"`
	Decorators    []string `hcl:"decorators,optional"`
}

// hclDecorator represents a `decorator` block.
type hclDecorator struct {
	ID               string   `hcl:"id,label"`
	Description      string   `hcl:"description,optional"`
	RequiresFeatures []string `hcl:"requires_features,optional"`
}

// hclManifestFile represents the top-level structure of one manifest file.
type hclManifestFile struct {
	Features   []*hclFeature   `hcl:"feature,block"`
	Widgets    []*hclWidget    `hcl:"widget,block"`
	Decorators []*hclDecorator `hcl:"decorator,block"`
}
