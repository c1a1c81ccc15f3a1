package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

const AdsLevelAccount = "account"

// AdsDailyRow espelha a tabela fact_ads_daily (uma linha por dia, nível conta)
type AdsDailyRow struct {
	MetricDate   civil.Date `bigquery:"metric_date"`
	AdAccountID  string     `bigquery:"ad_account_id"`
	Level        string     `bigquery:"level"`
	Currency     string     `bigquery:"currency"`
	TimezoneName string     `bigquery:"timezone_name"`
	Spend        float64    `bigquery:"spend"`
	Impressions  int64      `bigquery:"impressions"`
	Clicks       int64      `bigquery:"clicks"`
	ExtractedAt  time.Time  `bigquery:"extracted_at"`
}
