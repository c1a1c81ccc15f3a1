package metadomain

// InsightsResponse é a resposta de /{ig-user-id}/insights
type InsightsResponse struct {
	Data []InsightItem `json:"data"`
}

type InsightItem struct {
	Name        string         `json:"name"`
	Period      string         `json:"period"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ID          string         `json:"id"`
	TotalValue  *TotalValue    `json:"total_value,omitempty"`
	Values      []InsightValue `json:"values,omitempty"`
}

// TotalValue aparece nas consultas com metric_type=total_value
type TotalValue struct {
	Value      int64       `json:"value"`
	Breakdowns []Breakdown `json:"breakdowns"`
}

type Breakdown struct {
	DimensionKeys []string          `json:"dimension_keys"`
	Results       []BreakdownResult `json:"results"`
}

type BreakdownResult struct {
	DimensionValues []string `json:"dimension_values"`
	Value           int64    `json:"value"`
}

// InsightValue aparece nas consultas com metric_type=time_series
type InsightValue struct {
	Value   int64  `json:"value"`
	EndTime string `json:"end_time"`
}

// BreakdownValue é uma linha achatada de um breakdown.
// DimensionValue é nil quando a API não envia dimension_values.
type BreakdownValue struct {
	DimensionValue *string
	Value          int64
}

// TimeSeriesPoint é uma linha achatada de uma série temporal
type TimeSeriesPoint struct {
	Metric  string
	EndTime string
	Value   int64
}
