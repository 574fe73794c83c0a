package pkgconfig

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables that override file values.
// The key "server.address" is overridden by CITYWORKS_SERVER_ADDRESS.
const EnvPrefix = "CITYWORKS"

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v        *viper.Viper
	validate *validator.Validate
}

var _ Config = (*Viper)(nil)

// NewViper loads configuration from the given file path and returns a Viper-backed Config.
//
// The config file type is inferred by Viper from the filename extension.
func NewViper(pathFile string) (*Viper, error) {
	v := viper.New()

	filename := path.Base(pathFile)
	filePath := path.Dir(pathFile)

	configName := path.Base(filename[:len(filename)-len(path.Ext(filename))])

	v.AddConfigPath(filePath)
	v.SetConfigName(configName)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.WatchConfig()

	return &Viper{v: v, validate: validator.New()}, nil
}

// GetInt returns the value for key as int64.
func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetFloat returns the value for key as float64.
func (vc *Viper) GetFloat(key string) float64 {
	return vc.v.GetFloat64(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetDuration returns the value for key parsed as a time.Duration ("5s", "250ms").
func (vc *Viper) GetDuration(key string) time.Duration {
	return vc.v.GetDuration(key)
}

// GetArray returns the value for key as a list. Both YAML sequences and
// comma separated strings are accepted; blank entries are dropped.
func (vc *Viper) GetArray(key string) []string {
	var out []string
	for _, item := range vc.v.GetStringSlice(key) {
		for _, value := range strings.Split(item, ",") {
			if value = strings.TrimSpace(value); value != "" {
				out = append(out, value)
			}
		}
	}
	return out
}

// Decode unmarshals the section at key into out (using mapstructure tags) and
// validates the result with its validate tags.
func (vc *Viper) Decode(key string, out any) error {
	if err := vc.v.UnmarshalKey(key, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}

	if err := vc.validate.Struct(out); err != nil {
		return fmt.Errorf("validate %s: %w", key, err)
	}

	return nil
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	// No resources to close for ViperConfig; this is just for interface completeness.
	return nil
}
