package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything read from the environment at startup.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr string

	HTTPAddr string

	SampleInterval time.Duration
	RecordInterval time.Duration
	TrackInterval  time.Duration
}

func Load() *Config {
	viper.AutomaticEnv()

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_USER", "netbl_user")
	viper.SetDefault("DB_PASSWORD", "netbl_password")
	viper.SetDefault("DB_NAME", "netbl_db")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("HTTP_ADDR", ":8080")
	viper.SetDefault("SAMPLE_INTERVAL", "2s")
	viper.SetDefault("RECORD_INTERVAL", "60s")
	viper.SetDefault("TRACK_INTERVAL", "60s")

	return &Config{
		DBHost:         viper.GetString("DB_HOST"),
		DBUser:         viper.GetString("DB_USER"),
		DBPassword:     viper.GetString("DB_PASSWORD"),
		DBName:         viper.GetString("DB_NAME"),
		DBPort:         viper.GetString("DB_PORT"),
		RedisAddr:      viper.GetString("REDIS_ADDR"),
		HTTPAddr:       viper.GetString("HTTP_ADDR"),
		SampleInterval: viper.GetDuration("SAMPLE_INTERVAL"),
		RecordInterval: viper.GetDuration("RECORD_INTERVAL"),
		TrackInterval:  viper.GetDuration("TRACK_INTERVAL"),
	}
}

// PostgresURL builds the DSN used by both pgxpool and golang-migrate.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
