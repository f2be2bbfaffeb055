package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "LearnHub")
	Conf.SetDefault("secretKey", "n0q2-jxm)dhw$+62=kz&vpyr3(w!d)#*g5(#hj8n^$fthm9pqx")
	Conf.SetDefault("defaultFromEmail", "noreply@learn.hub")
	Conf.SetDefault("orgEmailDomain", "@learn.hub")
	Conf.SetDefault("legacyEmailDomain", "@edu.com")
	Conf.SetDefault("dataDir", filepath.Join(Getwd(), "data"))
	Conf.SetDefault("quizPassMark", 60)
	Conf.SetDefault("sessionExpirationDelta", 7*24*time.Hour)
	Conf.SetDefault("rollbarToken", "")
	Conf.SetDefault("sendgridApiKey", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case strings.ToUpper("TEST"):
		Conf.SetDefault("testMode", true)
	}
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}
