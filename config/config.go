package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"campnav/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxUploadSize      = "10MB"
	defaultSessionCookieName  = "campnav_admin_session"
	defaultSessionTTL         = 24 * time.Hour
	defaultSignedURLExpiry    = time.Hour
	defaultPublicBaseURL      = "/files"
	defaultLoginRatePerMinute = 10
	defaultLoginBurst         = 5
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// WebRoot serves static dashboard assets under /assets when set.
		WebRoot string `json:"webRoot" yaml:"webRoot"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Admin holds the shared dashboard password (ADMIN_PASSWORD).
	Admin struct {
		Password string `json:"password" yaml:"password"`
	} `json:"admin" yaml:"admin"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// DatabaseConfig controls schema management at startup.
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	// Queries slower than this are logged at warn level. Zero disables slow query logging.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// SessionConfig defines the admin session cookie
type SessionConfig struct {
	// Secret signs session tokens. A random per-process key is used when empty.
	Secret     string        `json:"secret" yaml:"secret"`
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost         int `json:"bcryptCost" yaml:"bcryptCost"`
	LoginRatePerMinute int `json:"loginRatePerMinute" yaml:"loginRatePerMinute"`
	LoginBurst         int `json:"loginBurst" yaml:"loginBurst"`
}

// StorageConfig defines the blob bucket used for uploaded images
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL: file:///path, mem://, gs://bucket, s3://bucket
	BucketURL       string        `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL   string        `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	UseSignedURLs   bool          `json:"useSignedUrls" yaml:"useSignedUrls"`
	SignedURLExpiry time.Duration `json:"signedUrlExpiry" yaml:"signedUrlExpiry"`
	MaxUploadSize   string        `json:"maxUploadSize" yaml:"maxUploadSize"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv reads <name>.yaml from the working directory or the first of
// dirs that has it, then overlays the process environment. A .env file in the
// working directory is exported before the environment is read.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	path, err := findConfigFile(name+".yaml", append([]string{defaultPath}, dirs...))
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	declared := k.Raw()
	overlay := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, declared), value
		},
	})
	if err := k.Load(overlay, nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	out := new(T)
	decoder := &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		// Env keys arrive lowercased when the YAML does not declare them.
		MatchName: strings.EqualFold,
	}
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{DecoderConfig: decoder}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return out, nil
}

func findConfigFile(filename string, dirs []string) (string, error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", filename, strings.Join(dirs, ", "))
}

// New loads config.yaml for the running service.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	return cfg, nil
}

// IsProduction reports whether cookies and other transport settings should be hardened.
func (cfg *Config) IsProduction() bool {
	return strings.EqualFold(cfg.Env.Env, constants.EnvProduction) || strings.EqualFold(cfg.Env.Env, "prod")
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.Env.Env) == "" {
		cfg.Env.Env = constants.EnvDevelop
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.LoginRatePerMinute <= 0 {
		cfg.Auth.LoginRatePerMinute = defaultLoginRatePerMinute
	}
	if cfg.Auth.LoginBurst <= 0 {
		cfg.Auth.LoginBurst = defaultLoginBurst
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = "mem://"
	}
	if cfg.Storage.PublicBaseURL == "" {
		cfg.Storage.PublicBaseURL = defaultPublicBaseURL
	}
	if cfg.Storage.SignedURLExpiry <= 0 {
		cfg.Storage.SignedURLExpiry = defaultSignedURLExpiry
	}
	if cfg.Storage.MaxUploadSize == "" {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
}

// loadDotEnv exports a local .env file into the process environment.
// Variables that are already set win over the file.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return errors.Wrap(err, "load .env")
}

// canonicalizeEnvKey maps POSTGRES_SSLMODE to postgres.sslMode by matching each
// segment against the keys the YAML declares. Undeclared segments stay lowercase.
func canonicalizeEnvKey(envKey string, declared map[string]any) string {
	var path []string
	level := declared

	for _, part := range strings.Split(strings.ToLower(envKey), "_") {
		if part == "" {
			continue
		}

		var key string
		key, level = matchDeclaredKey(level, part)
		path = append(path, key)
	}

	return strings.Join(path, ".")
}

func matchDeclaredKey(level map[string]any, part string) (string, map[string]any) {
	want := foldKey(part)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return part, nil
}

// foldKey keeps only letters and digits, lowercased.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first replica without a host or port.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for n := 0; ; n++ {
		get := func(field string) string {
			return os.Getenv(fmt.Sprintf("POSTGRES_REPLICAS_%d_%s", n, field))
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
