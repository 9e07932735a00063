package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"
	defaultTokenTTL           = 2 * time.Hour
	defaultHashScheme         = "argon2id"
	defaultUploadBucketURL    = "file://./uploads?create_dir=true"
	defaultUploadPublicPath   = "/uploads"
	defaultMaxPhotoSize       = 5 << 20
	defaultMaxResumeSize      = 10 << 20
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"

	// MinSecretKeyLength is the shortest accepted HMAC signing secret, in bytes.
	MinSecretKeyLength = 32
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
		// FrontendDir holds signup.html, login.html and dashboard.html; pages are not served when empty.
		FrontendDir string `json:"frontendDir" yaml:"frontendDir"`
		Timeouts    struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Upload configuration for profile photos and resumes
	Upload *UploadConfig `json:"upload" yaml:"upload"`

	// QRCode configuration for profile share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for account event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// MigrationConfig controls schema management at startup.
type MigrationConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines credential hashing and session token configuration
type AuthConfig struct {
	// HashScheme is the scheme new credentials are hashed with: argon2id, bcrypt or pbkdf2-sha256.
	HashScheme   string       `json:"hashScheme" yaml:"hashScheme"`
	BcryptCost   int          `json:"bcryptCost" yaml:"bcryptCost"`
	PBKDF2Rounds int          `json:"pbkdf2Rounds" yaml:"pbkdf2Rounds"`
	Argon2       Argon2Config `json:"argon2" yaml:"argon2"`

	TokenTTL    time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	TokenIssuer string        `json:"tokenIssuer" yaml:"tokenIssuer"`

	// RehashOnLogin upgrades credentials made with an older scheme after a successful login.
	RehashOnLogin bool `json:"rehashOnLogin" yaml:"rehashOnLogin"`
}

// Argon2Config holds argon2id cost parameters. Zero values fall back to the hasher defaults.
type Argon2Config struct {
	Memory      uint32 `json:"memory" yaml:"memory"` // KiB
	Iterations  uint32 `json:"iterations" yaml:"iterations"`
	Parallelism uint8  `json:"parallelism" yaml:"parallelism"`
	SaltLength  uint32 `json:"saltLength" yaml:"saltLength"`
	KeyLength   uint32 `json:"keyLength" yaml:"keyLength"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// UploadConfig defines where uploaded files live and how large they may be
type UploadConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/lib/vitae/uploads or mem://.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicPath is the URL prefix stored files are served under
	PublicPath string `json:"publicPath" yaml:"publicPath"`

	MaxPhotoSize  int64 `json:"maxPhotoSize" yaml:"maxPhotoSize"`
	MaxResumeSize int64 `json:"maxResumeSize" yaml:"maxResumeSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: SECRETKEY_ACCESS -> secretKey.access (not secretkey.access)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Case-insensitive matching so env var overrides land on camelCase fields
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills in every optional section left empty by the config file.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Migration == nil {
		cfg.Migration = &MigrationConfig{}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.HashScheme == "" {
		cfg.Auth.HashScheme = defaultHashScheme
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{
			MinLength: 8,
			MaxLength: 72,
		}
	}

	if cfg.Upload == nil {
		cfg.Upload = &UploadConfig{}
	}
	if cfg.Upload.BucketURL == "" {
		cfg.Upload.BucketURL = defaultUploadBucketURL
	}
	if cfg.Upload.PublicPath == "" {
		cfg.Upload.PublicPath = defaultUploadPublicPath
	}
	if cfg.Upload.MaxPhotoSize <= 0 {
		cfg.Upload.MaxPhotoSize = defaultMaxPhotoSize
	}
	if cfg.Upload.MaxResumeSize <= 0 {
		cfg.Upload.MaxResumeSize = defaultMaxResumeSize
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}
	if cfg.QRCode.BaseURL == "" {
		cfg.QRCode.BaseURL = "http://localhost:" + strconv.Itoa(cfg.HTTP.Port)
	}
}

// Validate rejects configurations the service must not start with.
func (cfg *Config) Validate() error {
	secret := strings.TrimSpace(cfg.SecretKey.Access)
	if secret == "" {
		return errors.New("secretKey.access must be provided")
	}
	if len(secret) < MinSecretKeyLength {
		return errors.Errorf("secretKey.access must be at least %d bytes", MinSecretKeyLength)
	}
	if secret == "CHANGE_THIS_SECRET_KEY" {
		return errors.New("secretKey.access still holds the placeholder value")
	}

	if cfg.Auth != nil && cfg.Auth.TokenTTL < 0 {
		return errors.New("auth.tokenTTL must not be negative")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
