package domain

import (
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
)

// Valores fixos gravados nas tabelas de media product e follows
const (
	PeriodDay             = "day"
	PeriodLifetime        = "lifetime"
	MetricTypeTotalValue  = "total_value"
	MetricTypeTimeSeries  = "time_series"
	BreakdownMediaProduct = "media_product_type"
	BreakdownFollowType   = "follow_type"
	MetricFollows         = "follows_and_unfollows"

	FollowTypeFollower    = "FOLLOWER"
	FollowTypeNonFollower = "NON_FOLLOWER"
)

// DemographicRow espelha a tabela fact_instagram_demographics
type DemographicRow struct {
	Metric         string              `bigquery:"metric"`
	Timeframe      string              `bigquery:"timeframe"`
	Dimension      string              `bigquery:"dimension"`
	DimensionValue bigquery.NullString `bigquery:"dimension_value"`
	Value          int64               `bigquery:"value"`
	ExtractedAt    time.Time           `bigquery:"extracted_at"`
}

// MediaProductRow espelha a tabela fact_instagram_media_product_24h.
// Since e Until ficam nulos quando a coleta usa a janela padrão de 24h da API.
type MediaProductRow struct {
	MetricDate     civil.Date          `bigquery:"metric_date"`
	Metric         string              `bigquery:"metric"`
	Period         string              `bigquery:"period"`
	MetricType     string              `bigquery:"metric_type"`
	Breakdown      string              `bigquery:"breakdown"`
	DimensionValue bigquery.NullString `bigquery:"dimension_value"`
	Value          int64               `bigquery:"value"`
	Since          bigquery.NullInt64  `bigquery:"since"`
	Until          bigquery.NullInt64  `bigquery:"until"`
	ExtractedAt    time.Time           `bigquery:"extracted_at"`
}

// FollowsRow espelha a tabela fact_instagram_follows_unfollows_day
type FollowsRow struct {
	MetricDate  civil.Date          `bigquery:"metric_date"`
	Metric      string              `bigquery:"metric"`
	FollowType  bigquery.NullString `bigquery:"follow_type"`
	Value       int64               `bigquery:"value"`
	Since       int64               `bigquery:"since"`
	Until       int64               `bigquery:"until"`
	ExtractedAt time.Time           `bigquery:"extracted_at"`
}

// FollowersSnapshotRow espelha a tabela fact_instagram_account_daily
type FollowersSnapshotRow struct {
	MetricDate     civil.Date `bigquery:"metric_date"`
	AccountID      string     `bigquery:"account_id"`
	FollowersCount int64      `bigquery:"followers_count"`
	ExtractedAt    time.Time  `bigquery:"extracted_at"`
}

// TimeSeriesRow espelha a tabela fact_instagram_time_series
type TimeSeriesRow struct {
	Metric      string     `bigquery:"metric"`
	MetricDate  civil.Date `bigquery:"metric_date"`
	EndTime     string     `bigquery:"end_time"`
	Value       int64      `bigquery:"value"`
	Since       int64      `bigquery:"since"`
	Until       int64      `bigquery:"until"`
	ExtractedAt time.Time  `bigquery:"extracted_at"`
}
