package catalog

import (
	stderrors "errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"statline/internal"
	"statline/internal/errors"
)

// Load reads a YAML overlay and merges it onto Default(). Any list present in the
// file replaces the built-in list wholesale. An empty path returns Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.ConfigInvalid(fmt.Sprintf("catalog file %s does not exist", path))
		}
		return nil, errors.Wrapf(err, "read catalog file %s", path)
	}
	internal.DefaultLogger.Debug("catalog: loading overlay %s (%d bytes)", path, len(b))
	return Parse(b)
}

// Parse merges a YAML document onto Default() and validates the result.
func Parse(data []byte) (*Catalog, error) {
	var overlay Catalog
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("parse catalog: %w", err))
	}

	merged := merge(Default(), overlay)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	normalizeWeights(merged)
	return merged, nil
}

func merge(base *Catalog, overlay Catalog) *Catalog {
	out := base
	if len(overlay.FirstNames) > 0 {
		out.FirstNames = overlay.FirstNames
	}
	if len(overlay.LastNames) > 0 {
		out.LastNames = overlay.LastNames
	}
	if len(overlay.Teams) > 0 {
		out.Teams = overlay.Teams
	}
	if len(overlay.Positions) > 0 {
		out.Positions = overlay.Positions
	}
	return out
}

// normalizeWeights rescales weights to sum to 1 so the cumulative walk over a
// uniform draw covers every category. Tables already summing to 1 are left as is.
func normalizeWeights(c *Catalog) {
	total := c.TotalWeight()
	if math.Abs(total-1) < 1e-9 {
		return
	}
	for i := range c.Positions {
		c.Positions[i].Weight /= total
	}
}
