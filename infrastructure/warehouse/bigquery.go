package warehouse

import (
	"context"
	"net/http"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// maxLoggedRowErrors limita quantos erros por linha são logados quando o insert falha parcialmente
const maxLoggedRowErrors = 5

type BigQueryLoader struct {
	client  *bigquery.Client
	dataset string
}

func NewBigQueryLoader(ctx context.Context, cfg config.Warehouse) (*BigQueryLoader, error) {
	opts := make([]option.ClientOption, 0, 1)
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := bigquery.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao criar cliente do BigQuery para o projeto %s", cfg.ProjectID)
	}

	logrus.WithFields(logrus.Fields{
		"project_id": cfg.ProjectID,
		"dataset":    cfg.Dataset,
	}).Info("Cliente do BigQuery criado")

	return &BigQueryLoader{
		client:  client,
		dataset: cfg.Dataset,
	}, nil
}

func (l *BigQueryLoader) Load(ctx context.Context, table string, data domain.Tabular) error {
	schema, err := bigquery.InferSchema(data.Prototype())
	if err != nil {
		return errors.Wrapf(err, "erro ao inferir schema de %s", table)
	}

	ref := l.client.Dataset(l.dataset).Table(table)
	if err := ensureTable(ctx, ref, schema); err != nil {
		return errors.Wrapf(err, "erro ao preparar tabela %s.%s", l.dataset, table)
	}

	savers := valueSavers(data, schema)
	if len(savers) == 0 {
		return nil
	}

	if err := ref.Inserter().Put(ctx, savers); err != nil {
		logPutErrors(table, err)
		return errors.Wrapf(err, "erro ao inserir %d linhas em %s.%s", len(savers), l.dataset, table)
	}

	logrus.WithFields(logrus.Fields{
		"table": l.dataset + "." + table,
		"rows":  len(savers),
	}).Info("Linhas carregadas no BigQuery")

	return nil
}

func (l *BigQueryLoader) Close() error {
	return l.client.Close()
}

// ensureTable cria a tabela com o schema inferido quando ela ainda não existe
func ensureTable(ctx context.Context, ref *bigquery.Table, schema bigquery.Schema) error {
	_, err := ref.Metadata(ctx)
	if err == nil {
		return nil
	}
	if !isStatus(err, http.StatusNotFound) {
		return err
	}

	logrus.WithField("table", ref.FullyQualifiedName()).Info("Tabela não existe, criando")

	err = ref.Create(ctx, &bigquery.TableMetadata{Schema: schema})
	if err != nil && !isStatus(err, http.StatusConflict) {
		return err
	}
	return nil
}

// valueSavers gera um StructSaver por linha com insertID próprio, usado pelo BigQuery
// para descartar reenvios da mesma linha
func valueSavers(data domain.Tabular, schema bigquery.Schema) []bigquery.ValueSaver {
	values := data.Values()
	savers := make([]bigquery.ValueSaver, 0, len(values))
	for _, v := range values {
		savers = append(savers, &bigquery.StructSaver{
			Struct:   v,
			Schema:   schema,
			InsertID: uuid.NewString(),
		})
	}
	return savers
}

func isStatus(err error, code int) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func logPutErrors(table string, err error) {
	var multi bigquery.PutMultiError
	if !errors.As(err, &multi) {
		return
	}

	for i, rowErr := range multi {
		if i >= maxLoggedRowErrors {
			break
		}
		logrus.WithFields(logrus.Fields{
			"table":     table,
			"row_index": rowErr.RowIndex,
			"errors":    rowErr.Errors.Error(),
		}).Error("Linha rejeitada pelo BigQuery")
	}
}
