package warehouse

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

func TestInferSchema_MatchesTableColumns(t *testing.T) {
	tables := map[string]domain.Tabular{
		"demographics":       domain.NewTable[domain.DemographicRow](nil),
		"media_product":      domain.NewTable[domain.MediaProductRow](nil),
		"follows_unfollows":  domain.NewTable[domain.FollowsRow](nil),
		"followers_snapshot": domain.NewTable[domain.FollowersSnapshotRow](nil),
		"ads_daily":          domain.NewTable[domain.AdsDailyRow](nil),
		"time_series":        domain.NewTable[domain.TimeSeriesRow](nil),
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			schema, err := bigquery.InferSchema(table.Prototype())
			require.NoError(t, err)

			names := make([]string, 0, len(schema))
			for _, f := range schema {
				names = append(names, f.Name)
			}
			assert.Equal(t, table.Columns(), names)

			for _, f := range schema {
				_, err := postgresType(f.Type)
				assert.NoError(t, err, "coluna %s", f.Name)
			}
		})
	}
}

func TestInferSchema_AdsDailyTypes(t *testing.T) {
	schema, err := bigquery.InferSchema(domain.AdsDailyRow{})
	require.NoError(t, err)

	types := map[string]bigquery.FieldType{}
	for _, f := range schema {
		types[f.Name] = f.Type
	}

	assert.Equal(t, bigquery.DateFieldType, types["metric_date"])
	assert.Equal(t, bigquery.FloatFieldType, types["spend"])
	assert.Equal(t, bigquery.IntegerFieldType, types["clicks"])
	assert.Equal(t, bigquery.TimestampFieldType, types["extracted_at"])
}

func TestValueSavers(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	table := domain.NewTable([]domain.FollowersSnapshotRow{
		{MetricDate: civil.Date{Year: 2025, Month: 3, Day: 10}, AccountID: "1784", FollowersCount: 10, ExtractedAt: now},
		{MetricDate: civil.Date{Year: 2025, Month: 3, Day: 10}, AccountID: "1784", FollowersCount: 11, ExtractedAt: now},
	})

	schema, err := bigquery.InferSchema(table.Prototype())
	require.NoError(t, err)

	savers := valueSavers(table, schema)
	require.Len(t, savers, 2)

	row, insertID, err := savers[0].Save()
	require.NoError(t, err)
	assert.NotEmpty(t, insertID)
	assert.Len(t, row, 4)
	assert.Contains(t, row, "followers_count")

	_, otherID, err := savers[1].Save()
	require.NoError(t, err)
	assert.NotEqual(t, insertID, otherID)

	assert.Empty(t, valueSavers(domain.NewTable[domain.AdsDailyRow](nil), schema))
}

func TestCreateTableSQL(t *testing.T) {
	schema := bigquery.Schema{
		{Name: "metric_date", Type: bigquery.DateFieldType, Required: true},
		{Name: "follow_type", Type: bigquery.StringFieldType},
		{Name: "value", Type: bigquery.IntegerFieldType, Required: true},
		{Name: "spend", Type: bigquery.FloatFieldType, Required: true},
		{Name: "extracted_at", Type: bigquery.TimestampFieldType, Required: true},
	}

	query, err := createTableSQL("marketing", "fact_instagram_follows_unfollows_day", schema)
	require.NoError(t, err)

	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "marketing"."fact_instagram_follows_unfollows_day" (`+
			`"metric_date" DATE NOT NULL, "follow_type" TEXT, "value" BIGINT NOT NULL, `+
			`"spend" DOUBLE PRECISION NOT NULL, "extracted_at" TIMESTAMPTZ NOT NULL)`,
		query)

	_, err = createTableSQL("marketing", "x", bigquery.Schema{{Name: "geo", Type: bigquery.GeographyFieldType}})
	assert.Error(t, err)

	assert.Equal(t, `CREATE SCHEMA IF NOT EXISTS "marketing"`, createSchemaSQL("marketing"))
}

func TestInsertSQL(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	table := domain.NewTable([]domain.FollowsRow{
		{MetricDate: civil.Date{Year: 2025, Month: 3, Day: 9}, Metric: "follows_and_unfollows", FollowType: bigquery.NullString{StringVal: "FOLLOWER", Valid: true}, Value: 3, Since: 1, Until: 2, ExtractedAt: now},
		{MetricDate: civil.Date{Year: 2025, Month: 3, Day: 9}, Metric: "follows_and_unfollows", Value: 0, Since: 1, Until: 2, ExtractedAt: now},
	})

	query, args, err := insertSQL("marketing", "follows", table.Columns(), table.Records(-1))
	require.NoError(t, err)

	assert.Equal(t,
		`INSERT INTO "marketing"."follows" ("metric_date","metric","follow_type","value","since","until","extracted_at") `+
			`VALUES ($1,$2,$3,$4,$5,$6,$7),($8,$9,$10,$11,$12,$13,$14)`,
		query)

	require.Len(t, args, 14)
	assert.Equal(t, "2025-03-09", args[0])
	assert.Equal(t, "FOLLOWER", args[2])
	assert.Equal(t, int64(3), args[3])
	assert.Equal(t, now, args[6])
	assert.Nil(t, args[9])
}

func TestSQLValue(t *testing.T) {
	assert.Nil(t, sqlValue(civil.Date{}))
	assert.Nil(t, sqlValue(bigquery.NullInt64{}))
	assert.Equal(t, int64(7), sqlValue(bigquery.NullInt64{Int64: 7, Valid: true}))
	assert.Equal(t, 1.5, sqlValue(bigquery.NullFloat64{Float64: 1.5, Valid: true}))
	assert.Equal(t, "abc", sqlValue("abc"))
}

func TestNew_InvalidDriver(t *testing.T) {
	cfg := &config.Config{Warehouse: config.Warehouse{Driver: "snowflake"}}

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestDiscardLoader(t *testing.T) {
	var loader Loader = NewDiscardLoader()

	assert.NoError(t, loader.Load(context.Background(), "x", domain.NewTable([]domain.AdsDailyRow{{Clicks: 1}})))
	assert.NoError(t, loader.Close())
}
