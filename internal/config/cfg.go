package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Host        string `envconfig:"SERVER_HOST" default:"localhost"`
	Port        string `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10"`
}

type Db struct {
	Dialect        string `envconfig:"DB_DIALECT" default:"sqlite"`
	Source         string `envconfig:"DB_NAME" default:"alerts.db"`
	MigrationsPath string `envconfig:"DB_MIGRATIONS_DIR" default:"./migrations"`
}

type Redis struct {
	// Empty address disables the lookup cache.
	Addr      string `envconfig:"REDIS_ADDR" default:""`
	Password  string `envconfig:"REDIS_PASSWORD" default:""`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	LookupTTL int    `envconfig:"REDIS_LOOKUP_TTL_SECONDS" default:"3600"`
}

type Email struct {
	User     string `envconfig:"EMAIL_USER"`
	Host     string `envconfig:"EMAIL_HOST"`
	Port     string `envconfig:"EMAIL_PORT"`
	Password string `envconfig:"EMAIL_PASSWORD"`
	From     string `envconfig:"EMAIL_FROM"`
}

type SMS struct {
	APIKey string `envconfig:"SMS_API_KEY"`
	URL    string `envconfig:"SMS_GATEWAY_URL"`
	From   string `envconfig:"SMS_FROM" default:"WyoVoteWatch"`
}

type Dispatcher struct {
	RealtimeSpec        string `envconfig:"DISPATCH_REALTIME_SPEC" default:"0 */5 * * * *"`
	DailySpec           string `envconfig:"DISPATCH_DAILY_SPEC" default:"0 0 9 * * *"`
	RealtimeLookbackMin int    `envconfig:"DISPATCH_REALTIME_LOOKBACK_MIN" default:"60"`
	DailyLookbackMin    int    `envconfig:"DISPATCH_DAILY_LOOKBACK_MIN" default:"1440"`
}

type Config struct {
	TemplatesDir     string `envconfig:"TEMPLATES_DIR" default:"./templates"`
	LogsPath         string `envconfig:"LOGS_PATH" default:"./logs/outbound.log"`
	MetricsNamespace string `envconfig:"METRICS_NAMESPACE" default:"district_alerts"`

	Server     Server
	DB         Db
	Redis      Redis
	Email      Email
	SMS        SMS
	Dispatcher Dispatcher
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}
