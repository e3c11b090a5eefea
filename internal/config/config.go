package config

import "github.com/spf13/viper"

func Load() error {
	// API Configuration
	viper.SetDefault("API_ADDR", ":8080")
	viper.SetDefault("MAX_UPLOAD_MB", 16)

	// Storage Configuration
	viper.SetDefault("UPLOAD_DIR", "uploads")

	// Analytics Configuration
	viper.SetDefault("PRICE_PER_KWH", 0.25)
	viper.SetDefault("FORECAST_DEFAULT_DAYS", 7)
	viper.SetDefault("FORECAST_MAX_DAYS", 30)
	viper.SetDefault("ANALYTICS_SEED", 42)

	viper.AutomaticEnv()
	return nil
}

func APIAddr() string          { return viper.GetString("API_ADDR") }
func MaxUploadMB() int         { return viper.GetInt("MAX_UPLOAD_MB") }
func UploadDir() string        { return viper.GetString("UPLOAD_DIR") }
func PricePerKWh() float64     { return viper.GetFloat64("PRICE_PER_KWH") }
func ForecastDefaultDays() int { return viper.GetInt("FORECAST_DEFAULT_DAYS") }
func ForecastMaxDays() int     { return viper.GetInt("FORECAST_MAX_DAYS") }
func AnalyticsSeed() int64     { return viper.GetInt64("ANALYTICS_SEED") }
