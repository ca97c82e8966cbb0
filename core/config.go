package core

import (
	"log"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime settings. It is loaded once at startup and passed
// explicitly to every component that needs it; nothing reads the environment
// after LoadConfig returns.
type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (local; default), TEST, QA, PROD
	AppName  string
	Build    string

	SecretKey []byte

	// document store
	StorageDir string
	StorageKey string

	JWTExpirationDelta time.Duration

	DefaultFromName string
	DefaultFromAddr string
	SendgridApiKey  string
	RollbarToken    string
	FrontendBaseURL string
}

func (c *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: c.DefaultFromName, Address: c.DefaultFromAddr}
}

func (c *Config) IsProd() bool {
	return c.Env == "PROD"
}

// LoadConfig reads settings from the environment (and an optional .env file)
// on top of the defaults.
func LoadConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "SPAMS")
	conf.SetDefault("secretKey", "n0t-s0-s3cret-d3mo-k3y-ch4nge-me")
	conf.SetDefault("storageDir", "data")
	conf.SetDefault("storageKey", "spams_v5_store")
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("defaultFromName", "SPAMS")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("sendgridApiKey", "")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("frontendBaseUrl", "http://localhost:3000")

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := ".env." + strings.ToLower(env)
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:              conf.GetBool("debug"),
		TestMode:           env == "TEST",
		Env:                env,
		AppName:            conf.GetString("appName"),
		SecretKey:          []byte(conf.GetString("secretKey")),
		StorageDir:         conf.GetString("storageDir"),
		StorageKey:         conf.GetString("storageKey"),
		JWTExpirationDelta: conf.GetDuration("jwtExpirationDelta"),
		DefaultFromName:    conf.GetString("defaultFromName"),
		DefaultFromAddr:    conf.GetString("defaultFromEmail"),
		SendgridApiKey:     conf.GetString("sendgridApiKey"),
		RollbarToken:       conf.GetString("rollbarToken"),
		FrontendBaseURL:    conf.GetString("frontendBaseUrl"),
	}
}
