package warehouse

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// Loader acrescenta as linhas de uma tabela em <dataset>.<table>.
// Não há deduplicação nem migração de schema: a tabela é criada apenas quando não existe.
type Loader interface {
	Load(ctx context.Context, table string, data domain.Tabular) error
	Close() error
}

// New escolhe a implementação pelo WAREHOUSE_DRIVER
func New(ctx context.Context, cfg *config.Config) (Loader, error) {
	switch cfg.Warehouse.Driver {
	case config.WarehouseDriverBigQuery:
		return NewBigQueryLoader(ctx, cfg.Warehouse)
	case config.WarehouseDriverPostgres:
		return NewPostgresLoader(ctx, cfg)
	default:
		return nil, errors.Errorf("driver de warehouse não suportado: %q", cfg.Warehouse.Driver)
	}
}
