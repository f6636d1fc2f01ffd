package catalog

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pagecraft/pagewire/internal/ctxlog"
	"github.com/pagecraft/pagewire/internal/fsutil"
)

// Load discovers and parses every .hcl manifest under catalogPath into a
// Catalog. File paths are visited in sorted order; together with in-file
// block order this fixes feature declaration order across runs.
func Load(ctx context.Context, catalogPath string) (*Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading catalog manifests...", "path", catalogPath)

	filePaths, err := fsutil.FindFilesByExtension(catalogPath, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to walk catalog path %s: %w", catalogPath, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in catalog path", "path", catalogPath)
	}

	cat := New()
	parser := hclparse.NewParser()
	for _, filePath := range filePaths {
		if err := loadManifestFile(cat, parser, filePath); err != nil {
			return nil, err
		}
		logger.Debug("Loaded catalog manifest", "file", filePath)
	}

	logger.Info("Catalog loaded.",
		"features", len(cat.features),
		"widgets", len(cat.widgets),
		"decorators", len(cat.decorators),
	)
	return cat, nil
}

func loadManifestFile(cat *Catalog, parser *hclparse.Parser, filePath string) error {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
	}

	var parsed hclManifestFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
	}

	for _, fb := range parsed.Features {
		feature, err := translateFeature(fb)
		if err != nil {
			return fmt.Errorf("invalid feature block in %s: %w", filePath, err)
		}
		if err := cat.AddFeature(feature); err != nil {
			return fmt.Errorf("manifest file %s: %w", filePath, err)
		}
	}
	for _, wb := range parsed.Widgets {
		if err := cat.AddWidget(translateWidget(wb)); err != nil {
			return fmt.Errorf("manifest file %s: %w", filePath, err)
		}
	}
	for _, db := range parsed.Decorators {
		if err := cat.AddDecorator(translateDecorator(db)); err != nil {
			return fmt.Errorf("manifest file %s: %w", filePath, err)
		}
	}
	return nil
}
