package geojson

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/covid19india/district-dashboard/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "geojson")
}

// Index joins case rows to map features. It owns the district name to census
// code map and the feature collection whose features have been tagged with
// their code as the join id. Both are built once and read-only afterwards.
type Index struct {
	codes      map[string]string
	collection *schema.FeatureCollection
}

// ParseFeatureCollection decodes a GeoJSON boundary document. The dashboard
// cannot run without it, so any decode failure is returned as-is for the
// caller to treat as fatal.
func ParseFeatureCollection(r io.Reader) (*schema.FeatureCollection, error) {
	var fc schema.FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode feature collection: %w", err)
	}
	return &fc, nil
}

// BuildIndex extracts the district→code map from the collection and tags each
// usable feature with its code. A feature is usable only when both the
// district name (after trimming) and the code are present; anything else is
// expected data sparsity and is skipped without error.
//
// Districts that appear more than once keep their first code. The boundary
// file should not contain duplicates, so each one is logged.
func BuildIndex(fc *schema.FeatureCollection) *Index {
	idx := &Index{
		codes:      make(map[string]string),
		collection: fc,
	}

	for _, feature := range fc.Features {
		if feature == nil || feature.Properties == nil {
			continue
		}

		district, _ := feature.Properties["district"].(string)
		district = strings.TrimSpace(district)
		code := codeString(feature.Properties["dt_code"])

		if district == "" || code == "" {
			continue
		}

		if existing, ok := idx.codes[district]; ok {
			if existing != code {
				log.Warnf("district %q maps to both code %s and %s, keeping %s", district, existing, code, existing)
			}
			continue
		}

		idx.codes[district] = code
		feature.ID = code
	}

	return idx
}

// Code looks up the census code for a trimmed district name.
func (idx *Index) Code(district string) (string, bool) {
	code, ok := idx.codes[district]
	return code, ok
}

// Len returns the number of joinable districts.
func (idx *Index) Len() int {
	return len(idx.codes)
}

// Collection returns the tagged feature collection for the map renderer.
func (idx *Index) Collection() *schema.FeatureCollection {
	return idx.collection
}

// codeString normalizes the dt_code property, which shows up as either a JSON
// string or a number depending on who exported the boundary file.
func codeString(v interface{}) string {
	switch code := v.(type) {
	case string:
		return strings.TrimSpace(code)
	case float64:
		return strconv.FormatInt(int64(code), 10)
	case json.Number:
		return code.String()
	}
	return ""
}
