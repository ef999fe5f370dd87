package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Policy   PolicyConfig   `mapstructure:"policy"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	BusyLock BusyLockConfig `mapstructure:"busy_lock"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	WorkspacesTable string `mapstructure:"workspaces_table"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Enabled reports whether a Redis host is configured; without one the busy
// lock stays in process.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Host) != ""
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PolicyConfig holds the workflow stage and role ids used by the view policy.
type PolicyConfig struct {
	EarlyStages    []int `mapstructure:"early_stages"`
	OverheadStage  int   `mapstructure:"overhead_stage"`
	LateStages     []int `mapstructure:"late_stages"`
	ComponentRole  int   `mapstructure:"component_role"`
	BOMRole        int   `mapstructure:"bom_role"`
	CostSheetRoles []int `mapstructure:"cost_sheet_roles"`
}

type CatalogConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type BusyLockConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.workspaces_table", "workspaces")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("jwt.issuer", "rfq-console")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("policy.early_stages", []int{1, 2, 3})
	v.SetDefault("policy.overhead_stage", 4)
	v.SetDefault("policy.late_stages", []int{5, 6, 7, 8})
	v.SetDefault("policy.component_role", 3)
	v.SetDefault("policy.bom_role", 4)
	v.SetDefault("policy.cost_sheet_roles", []int{1, 2})
	v.SetDefault("catalog.ttl", 5*time.Minute)
	v.SetDefault("busy_lock.ttl", 30*time.Second)
}

func bindEnvVariables(v *viper.Viper) {
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "GIN_MODE")
	v.BindEnv("backend.base_url", "RFQ_BACKEND_URL")
	v.BindEnv("backend.token", "RFQ_BACKEND_TOKEN")
	v.BindEnv("dynamodb.region", "AWS_REGION")
	v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	v.BindEnv("dynamodb.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("dynamodb.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("dynamodb.workspaces_table", "WORKSPACES_TABLE")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("jwt.secret", "JWT_SECRET")
	v.BindEnv("log.level", "LOG_LEVEL")
}
