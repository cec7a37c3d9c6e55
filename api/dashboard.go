package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/covid19india/district-dashboard/schema"
	"github.com/covid19india/district-dashboard/score"
	"github.com/covid19india/district-dashboard/store"
)

const dateLayout = "2006-01-02"

// Region is one joinable district in the choropleth payload. Value carries
// the selected metric; the four named counters feed the hover tooltip.
type Region struct {
	DtCode    string `json:"dt_code"`
	District  string `json:"district"`
	State     string `json:"state"`
	Value     int64  `json:"value"`
	Confirmed int64  `json:"confirmed"`
	Recovered int64  `json:"recovered"`
	Deceased  int64  `json:"deceased"`
	Tested    int64  `json:"tested"`
}

// RenderModel is everything one render cycle needs: totals for the summary
// cards, regions for the map, and the severity-ranked alert table.
type RenderModel struct {
	Date    string         `json:"date"`
	State   string         `json:"state"`
	Metric  schema.Metric  `json:"metric"`
	Summary schema.Summary `json:"summary"`
	Regions []Region       `json:"regions"`
	Alerts  []score.Alert  `json:"alerts"`
}

// filters describes the dashboard controls: the date picker bounds with the
// latest date preselected, the state dropdown values, and the metric list.
func (s *Server) filters(c *gin.Context) {
	min, max := s.snapshot.DateBounds()

	c.JSON(http.StatusOK, gin.H{
		"dates": gin.H{
			"min":     min.Format(dateLayout),
			"max":     max.Format(dateLayout),
			"default": max.Format(dateLayout),
		},
		"states":  s.snapshot.States(),
		"metrics": schema.Metrics,
	})
}

// dashboard recomputes the render model for the requested criteria. Each
// control change on the page lands here; the computation is synchronous and
// fast enough that no caching is needed.
func (s *Server) dashboard(c *gin.Context) {
	criteria, ok := s.parseCriteria(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BuildRenderModel(s.snapshot, criteria))
}

// boundary serves the tagged feature collection the client joins regions
// against.
func (s *Server) boundary(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshot.Index().Collection())
}

func (s *Server) parseCriteria(c *gin.Context) (schema.FilterCriteria, bool) {
	criteria := schema.FilterCriteria{
		State:  schema.StateAll,
		Metric: schema.MetricConfirmed,
	}

	_, max := s.snapshot.DateBounds()
	criteria.Date = max

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidDate, err)
			return criteria, false
		}
		criteria.Date = date.UTC()
	}

	if state := c.Query("state"); state != "" {
		criteria.State = state
	}

	if raw := c.Query("metric"); raw != "" {
		metric, err := schema.ParseMetric(raw)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownMetric, err)
			return criteria, false
		}
		criteria.Metric = metric
	}

	return criteria, true
}

// BuildRenderModel is the pure map from (snapshot, criteria) to one render
// cycle's payload. Rows without a join code stay in the totals and alerts but
// are left off the map.
func BuildRenderModel(snapshot *store.Snapshot, criteria schema.FilterCriteria) RenderModel {
	subset := snapshot.Filter(criteria)

	regions := make([]Region, 0, len(subset))
	for _, r := range subset {
		if r.DtCode == "" {
			continue
		}
		regions = append(regions, Region{
			DtCode:    r.DtCode,
			District:  r.District,
			State:     r.State,
			Value:     criteria.Metric.ValueOf(r),
			Confirmed: r.Confirmed,
			Recovered: r.Recovered,
			Deceased:  r.Deceased,
			Tested:    r.Tested,
		})
	}

	return RenderModel{
		Date:    criteria.Date.Format(dateLayout),
		State:   criteria.State,
		Metric:  criteria.Metric,
		Summary: store.Summarize(subset),
		Regions: regions,
		Alerts:  score.TopAlerts(subset, score.AlertLimit),
	}
}
