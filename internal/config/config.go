package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Data      Data      `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	AWS       AWS       `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Title    string `mapstructure:"app_title"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Data descreve de onde a tabela de vendas é carregada
type Data struct {
	Source string `mapstructure:"data_source"`
	Path   string `mapstructure:"data_path"`
	Table  string `mapstructure:"sales_table"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type AWS struct {
	Region string `mapstructure:"aws_region"`
}

type Dashboard struct {
	ProductName string        `mapstructure:"product_name"`
	SessionTTL  time.Duration `mapstructure:"session_ttl"`
	MaxSessions int           `mapstructure:"max_sessions"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8050")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:8050,http://127.0.0.1:8050")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_TITLE", "Pink Morsel Sales Visualiser")

	v.SetDefault("DATA_SOURCE", DataSourceCSV)
	v.SetDefault("DATA_PATH", "data/processed_data.csv")
	v.SetDefault("SALES_TABLE", "sales_records")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	v.SetDefault("AWS_REGION", "")

	v.SetDefault("PRODUCT_NAME", "Pink Morsels")
	v.SetDefault("SESSION_TTL", "30m") // Sessões paradas por mais de 30 minutos são descartadas
	v.SetDefault("MAX_SESSIONS", 1000)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	return Load(viper.New())
}

// Load lê a configuração a partir de uma instância do viper já preparada
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// O .env é opcional: valores padrão e variáveis de ambiente bastam
	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Arquivo .env não lido pelo Viper: ", err)
	}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Data.Source = strings.ToLower(strings.TrimSpace(config.Data.Source))
	switch config.Data.Source {
	case DataSourceCSV, DataSourcePostgres:
	default:
		return nil, fmt.Errorf("data source inválido: %q (use %s ou %s)", config.Data.Source, DataSourceCSV, DataSourcePostgres)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente e valores padrão")
}
