package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingConfig indica que um valor obrigatório não foi configurado
var ErrMissingConfig = errors.New("configuração obrigatória ausente")

const (
	WarehouseDriverBigQuery = "bigquery"
	WarehouseDriverPostgres = "postgres"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	Warehouse    Warehouse    `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Tables       Tables       `mapstructure:",squash"`
	Pipeline     Pipeline     `mapstructure:",squash"`
	PipelineSync PipelineSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"-"`
	Version        string        `mapstructure:"meta_version"`
	AccessToken    string        `mapstructure:"meta_access_token"`
	IGUserID       string        `mapstructure:"ig_user_id"`
	AdAccountID    string        `mapstructure:"meta_ad_account_id"`
	RequestTimeout time.Duration `mapstructure:"meta_request_timeout"`
}

type Warehouse struct {
	Driver          string `mapstructure:"warehouse_driver"`
	ProjectID       string `mapstructure:"warehouse_project_id"`
	Dataset         string `mapstructure:"warehouse_dataset"`
	CredentialsFile string `mapstructure:"warehouse_credentials_file"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Tables contém os nomes das tabelas de destino dentro do dataset
type Tables struct {
	Demographics      string `mapstructure:"table_demographics"`
	MediaProduct      string `mapstructure:"table_media_product"`
	FollowsUnfollows  string `mapstructure:"table_follows_unfollows"`
	FollowersSnapshot string `mapstructure:"table_followers_snapshot"`
	AdsDaily          string `mapstructure:"table_ads_daily"`
	TimeSeries        string `mapstructure:"table_time_series"`
}

type Pipeline struct {
	DemographicsMetrics []string `mapstructure:"pipeline_demographics_metrics"`
	Timeframes          []string `mapstructure:"pipeline_timeframes"`
	Dimensions          []string `mapstructure:"pipeline_dimensions"`
	MediaProductMetrics []string `mapstructure:"pipeline_media_product_metrics"`
	AnalyticsTimezone   string   `mapstructure:"pipeline_analytics_timezone"`
	AdsTimezone         string   `mapstructure:"pipeline_ads_timezone"`
	PreviewRows         int      `mapstructure:"pipeline_preview_rows"`
	TimeSeriesEnabled   bool     `mapstructure:"pipeline_time_series_enabled"`
	TimeSeriesDays      int      `mapstructure:"pipeline_time_series_days"`
	TimeSeriesMetrics   []string `mapstructure:"pipeline_time_series_metrics"`
}

type PipelineSync struct {
	CronSchedule string `mapstructure:"pipeline_sync_cron"`
	Enabled      bool   `mapstructure:"pipeline_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v24.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("IG_USER_ID", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_REQUEST_TIMEOUT", "60s")

	viper.SetDefault("WAREHOUSE_DRIVER", WarehouseDriverBigQuery)
	viper.SetDefault("WAREHOUSE_PROJECT_ID", "cannele-marketing")
	viper.SetDefault("WAREHOUSE_DATASET", "marketing")
	viper.SetDefault("WAREHOUSE_CREDENTIALS_FILE", "") // vazio usa Application Default Credentials

	// Usado apenas quando WAREHOUSE_DRIVER=postgres
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketing?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TABLE_DEMOGRAPHICS", "fact_instagram_demographics")
	viper.SetDefault("TABLE_MEDIA_PRODUCT", "fact_instagram_media_product_24h")
	viper.SetDefault("TABLE_FOLLOWS_UNFOLLOWS", "fact_instagram_follows_unfollows_day")
	viper.SetDefault("TABLE_FOLLOWERS_SNAPSHOT", "fact_instagram_account_daily")
	viper.SetDefault("TABLE_ADS_DAILY", "fact_ads_daily")
	viper.SetDefault("TABLE_TIME_SERIES", "fact_instagram_time_series")

	viper.SetDefault("PIPELINE_DEMOGRAPHICS_METRICS", "follower_demographics,engaged_audience_demographics,reached_audience_demographics")
	viper.SetDefault("PIPELINE_TIMEFRAMES", "this_week,this_month")
	viper.SetDefault("PIPELINE_DIMENSIONS", "city,age,gender")
	viper.SetDefault("PIPELINE_MEDIA_PRODUCT_METRICS", "reach,likes,shares,comments,saves,views,total_interactions")
	viper.SetDefault("PIPELINE_ANALYTICS_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("PIPELINE_ADS_TIMEZONE", "America/Los_Angeles") // mesmo fuso da conta de anúncios
	viper.SetDefault("PIPELINE_PREVIEW_ROWS", 10)
	viper.SetDefault("PIPELINE_TIME_SERIES_ENABLED", false)
	viper.SetDefault("PIPELINE_TIME_SERIES_DAYS", 7)
	viper.SetDefault("PIPELINE_TIME_SERIES_METRICS", "reach") // hoje a única métrica disponível como time_series

	viper.SetDefault("PIPELINE_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("PIPELINE_SYNC_ENABLED", false)
}

// NewConfig carrega e valida a configuração completa do pipeline
func NewConfig() (*Config, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfig carrega a configuração sem validar os campos obrigatórios do pipeline.
// Usado por comandos que não falam com a Meta, como a emissão de tokens da API.
func LoadConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	config.normalize()

	return config, nil
}

func (c *Config) normalize() {
	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)
	c.Meta.AdAccountID = NormalizeAdAccountID(c.Meta.AdAccountID)

	c.Pipeline.DemographicsMetrics = trimAll(c.Pipeline.DemographicsMetrics)
	c.Pipeline.Timeframes = trimAll(c.Pipeline.Timeframes)
	c.Pipeline.Dimensions = trimAll(c.Pipeline.Dimensions)
	c.Pipeline.MediaProductMetrics = trimAll(c.Pipeline.MediaProductMetrics)
	c.Pipeline.TimeSeriesMetrics = trimAll(c.Pipeline.TimeSeriesMetrics)

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Validate falha no início do processo quando falta algum valor obrigatório.
// META_AD_ACCOUNT_ID não é validado aqui: apenas o coletor de anúncios depende dele.
func (c *Config) Validate() error {
	missing := make([]string, 0)

	if c.Meta.AccessToken == "" {
		missing = append(missing, "META_ACCESS_TOKEN")
	}
	if c.Meta.IGUserID == "" {
		missing = append(missing, "IG_USER_ID")
	}

	switch c.Warehouse.Driver {
	case WarehouseDriverBigQuery:
		if c.Warehouse.ProjectID == "" {
			missing = append(missing, "WAREHOUSE_PROJECT_ID")
		}
	case WarehouseDriverPostgres:
	default:
		return errors.Errorf("WAREHOUSE_DRIVER inválido: %q (valores aceitos: %s, %s)",
			c.Warehouse.Driver, WarehouseDriverBigQuery, WarehouseDriverPostgres)
	}

	if c.Warehouse.Dataset == "" {
		missing = append(missing, "WAREHOUSE_DATASET")
	}

	if len(missing) > 0 {
		return errors.Wrapf(ErrMissingConfig, "faltou %s no ambiente", strings.Join(missing, ", "))
	}

	if _, err := time.LoadLocation(c.Pipeline.AnalyticsTimezone); err != nil {
		return errors.Wrapf(err, "PIPELINE_ANALYTICS_TIMEZONE inválido: %q", c.Pipeline.AnalyticsTimezone)
	}
	if _, err := time.LoadLocation(c.Pipeline.AdsTimezone); err != nil {
		return errors.Wrapf(err, "PIPELINE_ADS_TIMEZONE inválido: %q", c.Pipeline.AdsTimezone)
	}

	return nil
}

// NormalizeAdAccountID garante o prefixo act_ exigido pela Marketing API
func NormalizeAdAccountID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, "act_") {
		return id
	}
	return "act_" + id
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
