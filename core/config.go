package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Conf holds the app-wide configuration. It is populated by LoadConfig at
// process start and treated as read-only afterwards.
var Conf *Config

type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (default), TEST, QA, PROD
	Build    string

	AppName              string
	SecretKey            string
	DefaultFromEmailName string
	DefaultFromEmailAddr string
	FrontendBaseURL      string

	SendgridApiKey string
	RollbarToken   string

	PasswordResetTimeoutDelta time.Duration

	Server struct {
		Host               string
		Port               string
		JWTExpirationDelta time.Duration
	}

	Store struct {
		Path string // accounts document
	}

	// seeded administrator account, created on first run
	Admin struct {
		Username string
		Password string
		Email    string
		FullName string
		Phone    string
	}
}

func (c *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: c.DefaultFromEmailName, Address: c.DefaultFromEmailAddr}
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

// LoadConfig populates Conf from defaults, an optional `.env.<env>` file and
// `<ENV>_`-prefixed environment variables.
func LoadConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "ACADINFO")
	v.SetDefault("secretKey", "x2m)e0t&yn$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	v.SetDefault("defaultFromEmailName", "ACADINFO")
	v.SetDefault("defaultFromEmailAddr", "noreply@acadinfo.com")
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("passwordResetTimeoutDelta", 3*24*time.Hour)
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("storePath", filepath.Join(".", "users.json"))
	v.SetDefault("adminUsername", "admin")
	v.SetDefault("adminPassword", "admin123") // documented default; override in PROD
	v.SetDefault("adminEmail", "admin@acadinfo.com")
	v.SetDefault("adminFullName", "Administrator")
	v.SetDefault("adminPhone", "9162960922")

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:                     v.GetBool("debug"),
		TestMode:                  v.GetBool("testMode"),
		Env:                       env,
		Build:                     v.GetString("build"),
		AppName:                   v.GetString("appName"),
		SecretKey:                 v.GetString("secretKey"),
		DefaultFromEmailName:      v.GetString("defaultFromEmailName"),
		DefaultFromEmailAddr:      v.GetString("defaultFromEmailAddr"),
		FrontendBaseURL:           v.GetString("frontendBaseURL"),
		SendgridApiKey:            v.GetString("sendgridApiKey"),
		RollbarToken:              v.GetString("rollbarToken"),
		PasswordResetTimeoutDelta: v.GetDuration("passwordResetTimeoutDelta"),
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.Port = v.GetString("serverPort")
	conf.Server.JWTExpirationDelta = v.GetDuration("jwtExpirationDelta")
	conf.Store.Path = v.GetString("storePath")
	conf.Admin.Username = v.GetString("adminUsername")
	conf.Admin.Password = v.GetString("adminPassword")
	conf.Admin.Email = v.GetString("adminEmail")
	conf.Admin.FullName = v.GetString("adminFullName")
	conf.Admin.Phone = v.GetString("adminPhone")

	Conf = conf
	return conf
}

func init() {
	LoadConfig()
}
