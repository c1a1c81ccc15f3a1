package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-insights-etl/infrastructure/database/postgres"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// insertBatchSize mantém cada INSERT bem abaixo do limite de 65535 parâmetros do Postgres
const insertBatchSize = 1000

// PostgresLoader grava as tabelas no schema WAREHOUSE_DATASET de um Postgres.
// Os tipos das colunas saem do mesmo schema inferido para o BigQuery.
type PostgresLoader struct {
	conn   postgres.Conn
	schema string
}

func NewPostgresLoader(ctx context.Context, cfg *config.Config) (*PostgresLoader, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	logrus.WithField("schema", cfg.Warehouse.Dataset).Info("Conexão com o Postgres estabelecida")

	return NewPostgresLoaderWithConn(conn, cfg.Warehouse.Dataset), nil
}

func NewPostgresLoaderWithConn(conn postgres.Conn, schema string) *PostgresLoader {
	return &PostgresLoader{
		conn:   conn,
		schema: schema,
	}
}

func (l *PostgresLoader) Load(ctx context.Context, table string, data domain.Tabular) error {
	schema, err := bigquery.InferSchema(data.Prototype())
	if err != nil {
		return errors.Wrapf(err, "erro ao inferir schema de %s", table)
	}

	createTable, err := createTableSQL(l.schema, table, schema)
	if err != nil {
		return err
	}

	records := data.Records(-1)
	columns := data.Columns()

	err = l.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, createSchemaSQL(l.schema)); err != nil {
			return errors.Wrapf(err, "erro ao criar schema %s", l.schema)
		}

		if _, err := tx.ExecContext(ctx, createTable); err != nil {
			return errors.Wrapf(err, "erro ao criar tabela %s.%s", l.schema, table)
		}

		for start := 0; start < len(records); start += insertBatchSize {
			end := min(start+insertBatchSize, len(records))

			query, args, err := insertSQL(l.schema, table, columns, records[start:end])
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return errors.Wrapf(err, "erro ao inserir linhas em %s.%s", l.schema, table)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"table": l.schema + "." + table,
		"rows":  len(records),
	}).Info("Linhas carregadas no Postgres")

	return nil
}

func (l *PostgresLoader) Close() error {
	return l.conn.Close()
}

func qualifiedName(schema, table string) string {
	return pq.QuoteIdentifier(schema) + "." + pq.QuoteIdentifier(table)
}

func createSchemaSQL(schema string) string {
	return "CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(schema)
}

func createTableSQL(schemaName, table string, schema bigquery.Schema) (string, error) {
	columns := make([]string, 0, len(schema))
	for _, field := range schema {
		typ, err := postgresType(field.Type)
		if err != nil {
			return "", errors.Wrapf(err, "coluna %s", field.Name)
		}

		column := pq.QuoteIdentifier(field.Name) + " " + typ
		if field.Required {
			column += " NOT NULL"
		}
		columns = append(columns, column)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		qualifiedName(schemaName, table), strings.Join(columns, ", ")), nil
}

func postgresType(t bigquery.FieldType) (string, error) {
	switch t {
	case bigquery.StringFieldType:
		return "TEXT", nil
	case bigquery.IntegerFieldType:
		return "BIGINT", nil
	case bigquery.FloatFieldType:
		return "DOUBLE PRECISION", nil
	case bigquery.BooleanFieldType:
		return "BOOLEAN", nil
	case bigquery.TimestampFieldType:
		return "TIMESTAMPTZ", nil
	case bigquery.DateFieldType:
		return "DATE", nil
	default:
		return "", errors.Errorf("tipo sem equivalente no Postgres: %s", t)
	}
}

func insertSQL(schemaName, table string, columns []string, records [][]any) (string, []any, error) {
	quoted := make([]string, 0, len(columns))
	for _, c := range columns {
		quoted = append(quoted, pq.QuoteIdentifier(c))
	}

	builder := squirrel.
		Insert(qualifiedName(schemaName, table)).
		Columns(quoted...).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		values := make([]any, 0, len(record))
		for _, v := range record {
			values = append(values, sqlValue(v))
		}
		builder = builder.Values(values...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao construir a query")
	}
	return query, args, nil
}

// sqlValue converte os tipos do BigQuery para valores aceitos pelo driver do Postgres
func sqlValue(v any) any {
	switch val := v.(type) {
	case civil.Date:
		if !val.IsValid() {
			return nil
		}
		return val.String()
	case bigquery.NullString:
		if !val.Valid {
			return nil
		}
		return val.StringVal
	case bigquery.NullInt64:
		if !val.Valid {
			return nil
		}
		return val.Int64
	case bigquery.NullFloat64:
		if !val.Valid {
			return nil
		}
		return val.Float64
	default:
		return v
	}
}
