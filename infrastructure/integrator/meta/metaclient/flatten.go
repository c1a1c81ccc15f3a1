package metaclient

import (
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
)

// FlattenBreakdowns achata data[].total_value.breakdowns[].results[] em pares (dimension_value, value).
// Apenas o primeiro dimension_value é usado; se a lista vier vazia ou ausente a dimensão fica nula.
func FlattenBreakdowns(resp metadomain.InsightsResponse) []metadomain.BreakdownValue {
	rows := make([]metadomain.BreakdownValue, 0)

	for _, item := range resp.Data {
		if item.TotalValue == nil {
			continue
		}
		for _, b := range item.TotalValue.Breakdowns {
			for _, res := range b.Results {
				var dimensionValue *string
				if len(res.DimensionValues) > 0 {
					v := res.DimensionValues[0]
					dimensionValue = &v
				}

				rows = append(rows, metadomain.BreakdownValue{
					DimensionValue: dimensionValue,
					Value:          res.Value,
				})
			}
		}
	}

	return rows
}

// FlattenTimeSeries achata data[].values[] em triplas (metric, end_time, value)
func FlattenTimeSeries(resp metadomain.InsightsResponse) []metadomain.TimeSeriesPoint {
	rows := make([]metadomain.TimeSeriesPoint, 0)

	for _, item := range resp.Data {
		for _, v := range item.Values {
			rows = append(rows, metadomain.TimeSeriesPoint{
				Metric:  item.Name,
				EndTime: v.EndTime,
				Value:   v.Value,
			})
		}
	}

	return rows
}
