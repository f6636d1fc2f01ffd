package page

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/pagecraft/pagewire/internal/ctxlog"
	"github.com/pagecraft/pagewire/internal/fsutil"
)

// LoadSite discovers and decodes every page document under sitePath. Each
// file is one page; a page without an explicit id takes its file basename.
// Duplicate page ids across files are a load error, not a silent overwrite.
func LoadSite(ctx context.Context, sitePath string) (*Site, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading site pages...", "path", sitePath)

	filePaths, err := fsutil.FindFilesByExtension(sitePath, ".json", ".yaml", ".yml")
	if err != nil {
		return nil, fmt.Errorf("failed to walk site path %s: %w", sitePath, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No page documents found in site path", "path", sitePath)
	}

	site := NewSite()
	for _, filePath := range filePaths {
		pg, err := LoadPage(filePath)
		if err != nil {
			return nil, err
		}
		if _, exists := site.Pages[pg.ID]; exists {
			return nil, fmt.Errorf("duplicate page id %q (second definition in %s)", pg.ID, filePath)
		}
		site.Pages[pg.ID] = pg
		logger.Debug("Loaded page document", "file", filePath, "page", pg.ID, "sections", len(pg.Sections))
	}

	logger.Info("Site loaded.", "pages", len(site.Pages))
	return site, nil
}

// LoadPage decodes a single page document. YAML documents are normalized
// through JSON so both formats share one decode path (and one set of
// binding-shape rules).
func LoadPage(filePath string) (*Page, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read page document %s: %w", filePath, err)
	}

	if strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml") {
		raw, err = yamlToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML page document %s: %w", filePath, err)
		}
	}

	var pg Page
	if err := json.Unmarshal(raw, &pg); err != nil {
		return nil, fmt.Errorf("failed to decode page document %s: %w", filePath, err)
	}

	if pg.ID == "" {
		base := filepath.Base(filePath)
		pg.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &pg, nil
}

// yamlToJSON re-encodes a YAML document as JSON bytes.
func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
