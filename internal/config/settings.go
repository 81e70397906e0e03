package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds everything the process needs at startup. Values come from
// the environment with sane defaults; there is no config file to deploy.
type Settings struct {
	DataDir        string
	Addr           string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
}

func Load() *Settings {
	v := viper.New()
	v.SetEnvPrefix("WHYGO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("data_dir", "data")
	v.SetDefault("addr", ":8080")
	v.SetDefault("token_ttl_minutes", 480)
	v.SetDefault("allowed_origins", "*")

	// JWT_SECRET is conventionally unprefixed.
	v.BindEnv("jwt_secret", "JWT_SECRET", "WHYGO_JWT_SECRET")

	return &Settings{
		DataDir:        v.GetString("data_dir"),
		Addr:           v.GetString("addr"),
		JWTSecret:      v.GetString("jwt_secret"),
		TokenTTL:       time.Duration(v.GetInt("token_ttl_minutes")) * time.Minute,
		AllowedOrigins: strings.Split(v.GetString("allowed_origins"), ","),
	}
}
