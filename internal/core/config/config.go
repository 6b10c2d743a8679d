package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the report server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// RedisURL enables the Redis-backed status store when set.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Nuvemshop holds the order API credentials.
	Nuvemshop NuvemshopConfig `mapstructure:",squash"`

	// HTTP holds the outbound client settings.
	HTTP HTTPConfig `mapstructure:",squash"`

	// Report holds the report generation settings.
	Report ReportConfig `mapstructure:",squash"`
}

// NuvemshopConfig holds the credentials for the Nuvemshop store.
type NuvemshopConfig struct {
	// APIURL is the API root, without the store id.
	APIURL string `mapstructure:"NUVEMSHOP_API_URL" default:"https://api.tiendanube.com/v1"`
	// Token is the store access token sent in the Authentication header.
	Token string `mapstructure:"NUVEMSHOP_TOKEN" required:"true"`
	// UserID is the store (account) identifier.
	UserID string `mapstructure:"NUVEMSHOP_USER_ID" required:"true"`
	// UserAgent identifies the integration; Nuvemshop asks for a contact in it.
	UserAgent string `mapstructure:"NUVEMSHOP_USER_AGENT" default:"Coupon Report (suporte@pangeia96.com)"`
}

// HTTPConfig tunes the shared HTTP client.
type HTTPConfig struct {
	// Timeout applies to every single request attempt.
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT" default:"30s"`
	// MaxAttempts is the total number of attempts for a request, first one included.
	MaxAttempts int `mapstructure:"HTTP_MAX_ATTEMPTS" default:"5"`
	// RetryBackoff is the base of the exponential backoff between attempts.
	RetryBackoff time.Duration `mapstructure:"HTTP_RETRY_BACKOFF" default:"1s"`
}

// ReportConfig holds the report pipeline settings.
type ReportConfig struct {
	// OutputDir is where spreadsheets are written.
	OutputDir string `mapstructure:"REPORT_OUTPUT_DIR" default:"."`
	// OrderStatuses are the order status partitions queried one after the other.
	OrderStatuses []string `mapstructure:"REPORT_ORDER_STATUSES" default:"open,closed"`
	// CouponAllowList holds codes that are always accepted.
	CouponAllowList []string `mapstructure:"COUPON_ALLOWLIST" default:"MDM"`
	// CouponSuffix accepts any code ending with it.
	CouponSuffix string `mapstructure:"COUPON_SUFFIX" default:"10"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.HTTP.MaxAttempts < 1 {
		return nil, fmt.Errorf("invalid configuration: HTTP_MAX_ATTEMPTS must be at least 1, got %d", config.HTTP.MaxAttempts)
	}

	return &config, nil
}

// OrdersURL is the order-listing endpoint of the configured store.
func (c NuvemshopConfig) OrdersURL() string {
	return fmt.Sprintf("%s/%s/orders", c.APIURL, c.UserID)
}

// processTags binds every tagged field to its env var and registers its default in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
