package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	errMissingPort     = errors.New("api.port is required")
	errUnknownDBDriver = errors.New("database.driver must be sqlite or postgres")
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Database *DatabaseConfig `mapstructure:"database"`
	Market   *MarketConfig   `mapstructure:"market"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Driver       string          `mapstructure:"driver"`
	SQLitePath   string          `mapstructure:"sqlite_path"`
	MaxOpenConns int             `mapstructure:"max_open_conns"`
	MaxIdleConns int             `mapstructure:"max_idle_conns"`
	Postgres     *PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

type MarketConfig struct {
	Items []MarketItemConfig `mapstructure:"items"`
}

// MarketItemConfig is one entry of the market seed list.
type MarketItemConfig struct {
	Name  string `mapstructure:"name"`
	Price int    `mapstructure:"price"`
	Icon  string `mapstructure:"icon"`
}

// DefaultMarketItems is seeded when the config file lists no items.
var DefaultMarketItems = []MarketItemConfig{
	{Name: "숙제 면제권", Price: 100, Icon: "📝"},
	{Name: "자리 이동권", Price: 50, Icon: "🪑"},
	{Name: "간식 쿠폰", Price: 80, Icon: "🍪"},
	{Name: "칭찬 스티커", Price: 30, Icon: "⭐"},
	{Name: "게임 시간권", Price: 120, Icon: "🎮"},
	{Name: "책 선물권", Price: 150, Icon: "📚"},
}

var corsMu sync.RWMutex

func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	if len(conf.Market.Items) == 0 {
		conf.Market.Items = DefaultMarketItems
	}

	watch(v, conf)

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "5000")
	v.SetDefault("api.base_url", "localhost:5000")
	v.SetDefault("api.allowed_cors_domains", []string{"*"})
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.sqlite_path", "school.db")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", "5432")
	v.SetDefault("database.postgres.user", "postgres")
	v.SetDefault("database.postgres.db", "classquest")
	v.SetDefault("database.postgres.sslmode", "disable")
}

func (c *AppConfig) validate() error {
	if c.API == nil || c.API.Port == "" {
		return errMissingPort
	}

	if c.Gin == nil {
		c.Gin = &GinConfig{}
	}
	if c.Market == nil {
		c.Market = &MarketConfig{}
	}

	if c.Database == nil {
		return errUnknownDBDriver
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w, got %q", errUnknownDBDriver, c.Database.Driver)
	}

	return nil
}

// watch re-reads the CORS domain list whenever the config file changes.
// Every other key needs a restart.
func watch(v *viper.Viper, conf *AppConfig) {
	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name), zap.String("op", e.Op.String()))

		corsMu.Lock()
		conf.API.AllowedCORSDomains = v.GetStringSlice("api.allowed_cors_domains")
		corsMu.Unlock()
	})
	v.WatchConfig()
}

// CORSDomains returns the current CORS allow list.
func (c *APIConfig) CORSDomains() []string {
	corsMu.RLock()
	defer corsMu.RUnlock()

	domains := make([]string, len(c.AllowedCORSDomains))
	copy(domains, c.AllowedCORSDomains)

	return domains
}
