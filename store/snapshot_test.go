package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covid19india/district-dashboard/geojson"
	"github.com/covid19india/district-dashboard/schema"
)

func testIndex(t *testing.T) *geojson.Index {
	t.Helper()

	fc := &schema.FeatureCollection{
		Type: "FeatureCollection",
		Features: []*schema.GeoFeature{
			{Properties: map[string]interface{}{"district": "Pune", "dt_code": "521"}},
			{Properties: map[string]interface{}{"district": "Mumbai", "dt_code": "519"}},
		},
	}
	return geojson.BuildIndex(fc)
}

func TestCoerceCount(t *testing.T) {
	cases := []struct {
		raw      string
		expected int64
	}{
		{"123", 123},
		{" 123 ", 123},
		{"123.0", 123},
		{"", 0},
		{"n/a", 0},
		{"12x", 0},
		{"-5", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, coerceCount(c.raw), "coerceCount(%q)", c.raw)
	}
}

func TestParseDate(t *testing.T) {
	d := parseDate("2021-05-01")
	assert.Equal(t, time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), d)

	d = parseDate("2021-05-01T10:30:00Z")
	assert.Equal(t, time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), d)

	assert.True(t, parseDate("not a date").IsZero())
	assert.True(t, parseDate("").IsZero())
}

func TestBuildSnapshotNormalization(t *testing.T) {
	rows := []caseRow{
		{Date: "2021-05-01", District: "  Pune ", State: " Maharashtra ", Confirmed: "15000", Recovered: "12000", Deceased: "300", Other: "oops", Tested: "90000"},
		{Date: "2021-05-01", District: "Nowhere", State: "Maharashtra", Confirmed: "10"},
		{Date: "bogus", District: "Mumbai", State: "Maharashtra", Confirmed: "77"},
	}

	s, err := buildSnapshot(testIndex(t), rows)
	require.NoError(t, err)
	require.Len(t, s.Records(), 3)

	pune := s.Records()[0]
	assert.Equal(t, "Pune", pune.District)
	assert.Equal(t, "Maharashtra", pune.State)
	assert.Equal(t, int64(15000), pune.Confirmed)
	assert.Equal(t, int64(0), pune.Other, "malformed cell coerces to 0")
	assert.Equal(t, "521", pune.DtCode)

	// no boundary match: record kept, join code empty
	nowhere := s.Records()[1]
	assert.Empty(t, nowhere.DtCode)
	assert.Equal(t, int64(10), nowhere.Confirmed)

	// malformed date: record kept with the zero sentinel
	mumbai := s.Records()[2]
	assert.False(t, mumbai.HasDate())
	assert.Equal(t, "519", mumbai.DtCode)
}

func TestBuildSnapshotJoinMatchesIndexExactly(t *testing.T) {
	index := testIndex(t)
	rows := []caseRow{
		{Date: "2021-05-01", District: "Pune", State: "MH"},
		{Date: "2021-05-01", District: "pune", State: "MH"},
		{Date: "2021-05-01", District: "Mumbai ", State: "MH"},
	}

	s, err := buildSnapshot(index, rows)
	require.NoError(t, err)

	for _, r := range s.Records() {
		code, ok := index.Code(r.District)
		if ok {
			assert.Equal(t, code, r.DtCode, "district %q", r.District)
		} else {
			assert.Empty(t, r.DtCode, "district %q", r.District)
		}
	}
}

func TestBuildSnapshotStatesAndBounds(t *testing.T) {
	rows := []caseRow{
		{Date: "2021-05-03", District: "A", State: "Kerala"},
		{Date: "2021-05-01", District: "B", State: "Assam"},
		{Date: "2021-05-02", District: "C", State: "Kerala"},
		{Date: "bad", District: "D", State: "Goa"},
	}

	s, err := buildSnapshot(testIndex(t), rows)
	require.NoError(t, err)

	assert.Equal(t, []string{schema.StateAll, "Assam", "Goa", "Kerala"}, s.States())

	min, max := s.DateBounds()
	assert.Equal(t, time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), min)
	assert.Equal(t, time.Date(2021, 5, 3, 0, 0, 0, 0, time.UTC), max)
}

func TestBuildSnapshotNoParseableDates(t *testing.T) {
	rows := []caseRow{
		{Date: "yesterday", District: "A", State: "X"},
		{Date: "", District: "B", State: "X"},
	}

	_, err := buildSnapshot(testIndex(t), rows)
	assert.Error(t, err)
}

func TestNewSnapshot(t *testing.T) {
	dir := t.TempDir()

	geoPath := filepath.Join(dir, "india.geojson")
	require.NoError(t, os.WriteFile(geoPath, []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {"district": "Pune", "dt_code": "521"},
			 "geometry": {"type": "Polygon", "coordinates": []}}
		]
	}`), 0644))

	csvPath := filepath.Join(dir, "districts.csv")
	csv := strings.Join([]string{
		"Date,District,State,Confirmed,Recovered,Deceased,Other,Tested",
		"2021-05-01,Pune,Maharashtra,15000,12000,300,10,90000",
		"2021-05-01,Satara,Maharashtra,500,400,5,0,4000",
	}, "\n")
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0644))

	s, err := NewSnapshot(geoPath, csvPath)
	require.NoError(t, err)

	require.Len(t, s.Records(), 2)
	assert.Equal(t, "521", s.Records()[0].DtCode)
	assert.Empty(t, s.Records()[1].DtCode)
	assert.Equal(t, "521", s.Index().Collection().Features[0].ID)
}

func TestNewSnapshotMissingFiles(t *testing.T) {
	dir := t.TempDir()

	geoPath := filepath.Join(dir, "india.geojson")
	require.NoError(t, os.WriteFile(geoPath, []byte(`{"type":"FeatureCollection","features":[]}`), 0644))

	_, err := NewSnapshot(filepath.Join(dir, "missing.geojson"), filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	_, err = NewSnapshot(geoPath, filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
