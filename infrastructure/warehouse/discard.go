package warehouse

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// DiscardLoader não grava nada; usado pelo modo --dry-run
type DiscardLoader struct{}

func NewDiscardLoader() *DiscardLoader {
	return &DiscardLoader{}
}

func (DiscardLoader) Load(_ context.Context, table string, data domain.Tabular) error {
	logrus.WithFields(logrus.Fields{
		"table": table,
		"rows":  data.Len(),
	}).Info("Dry run: carga ignorada")
	return nil
}

func (DiscardLoader) Close() error {
	return nil
}
