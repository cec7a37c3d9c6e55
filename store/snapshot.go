package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/sirupsen/logrus"

	"github.com/covid19india/district-dashboard/geojson"
	"github.com/covid19india/district-dashboard/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "store")
}

// caseRow is the raw CSV shape. Every column is decoded as text so that the
// coercion policy below is ours rather than the codec's: a malformed number
// must become 0, not a decode error that drops the row.
type caseRow struct {
	Date      string `csv:"Date"`
	District  string `csv:"District"`
	State     string `csv:"State"`
	Confirmed string `csv:"Confirmed"`
	Recovered string `csv:"Recovered"`
	Deceased  string `csv:"Deceased"`
	Other     string `csv:"Other"`
	Tested    string `csv:"Tested"`
}

// Snapshot is the immutable in-memory dataset built once at startup: the
// boundary index plus every normalized case row. All reads during render
// cycles go through it; nothing mutates it after load.
type Snapshot struct {
	index   *geojson.Index
	records []schema.CaseRecord

	states  []string
	minDate time.Time
	maxDate time.Time
}

// NewSnapshot loads the boundary file and the case dataset and normalizes
// them into a snapshot. Either file missing or unparseable is fatal: the
// dashboard cannot render without both inputs.
func NewSnapshot(geojsonPath, casesPath string) (*Snapshot, error) {
	geoFile, err := os.Open(geojsonPath)
	if err != nil {
		return nil, fmt.Errorf("open boundary file: %w", err)
	}
	defer geoFile.Close()

	fc, err := geojson.ParseFeatureCollection(geoFile)
	if err != nil {
		return nil, err
	}
	index := geojson.BuildIndex(fc)

	casesFile, err := os.Open(casesPath)
	if err != nil {
		return nil, fmt.Errorf("open case dataset: %w", err)
	}
	defer casesFile.Close()

	var rows []caseRow
	decoder, err := csvutil.NewDecoder(csv.NewReader(casesFile))
	if err != nil {
		return nil, fmt.Errorf("read case dataset header: %w", err)
	}
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode case dataset: %w", err)
	}

	snapshot, err := buildSnapshot(index, rows)
	if err != nil {
		return nil, err
	}

	log.Infof("loaded %d case rows across %d states (%d joinable districts)",
		len(snapshot.records), len(snapshot.states)-1, index.Len())
	return snapshot, nil
}

func buildSnapshot(index *geojson.Index, rows []caseRow) (*Snapshot, error) {
	s := &Snapshot{
		index:   index,
		records: make([]schema.CaseRecord, 0, len(rows)),
	}

	stateSet := make(map[string]struct{})
	datedRows := 0

	for _, row := range rows {
		record := schema.CaseRecord{
			Date:      parseDate(row.Date),
			District:  strings.TrimSpace(row.District),
			State:     strings.TrimSpace(row.State),
			Confirmed: coerceCount(row.Confirmed),
			Recovered: coerceCount(row.Recovered),
			Deceased:  coerceCount(row.Deceased),
			Other:     coerceCount(row.Other),
			Tested:    coerceCount(row.Tested),
		}

		if code, ok := index.Code(record.District); ok {
			record.DtCode = code
		}

		if record.HasDate() {
			datedRows++
			if s.minDate.IsZero() || record.Date.Before(s.minDate) {
				s.minDate = record.Date
			}
			if record.Date.After(s.maxDate) {
				s.maxDate = record.Date
			}
		}

		if record.State != "" {
			stateSet[record.State] = struct{}{}
		}

		s.records = append(s.records, record)
	}

	if len(rows) > 0 && datedRows == 0 {
		return nil, fmt.Errorf("case dataset has no parseable dates")
	}

	s.states = make([]string, 0, len(stateSet)+1)
	s.states = append(s.states, schema.StateAll)
	names := make([]string, 0, len(stateSet))
	for name := range stateSet {
		names = append(names, name)
	}
	sort.Strings(names)
	s.states = append(s.states, names...)

	return s, nil
}

// Records returns every normalized row in load order.
func (s *Snapshot) Records() []schema.CaseRecord {
	return s.records
}

// Index returns the boundary index.
func (s *Snapshot) Index() *geojson.Index {
	return s.index
}

// States returns "All" followed by the sorted distinct state names.
func (s *Snapshot) States() []string {
	return s.states
}

// DateBounds returns the earliest and latest parseable dates in the dataset.
// The latest date is the default selection for the date picker.
func (s *Snapshot) DateBounds() (min, max time.Time) {
	return s.minDate, s.maxDate
}

var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
}

// parseDate returns midnight UTC for a parseable date and the zero time for
// anything else. Rows with the zero sentinel stay in the dataset but never
// match a date filter.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

// coerceCount turns a raw cell into a non-negative count. Malformed input
// becomes 0: a zero on the map is more useful than a crashed load or a
// dropped row.
func coerceCount(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// some exports write counts as floats
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0
		}
		n = int64(f)
	}

	if n < 0 {
		return 0
	}
	return n
}
