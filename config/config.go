package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Schedule ScheduleConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// ScheduleConfig drives the CSV ingest and the availability grid.
type ScheduleConfig struct {
	CSVPath      string
	SlotMinutes  int
	Floors       []int
	FloorMapPath string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("CACHE_TTL"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}

	slotMinutes := viper.GetInt("SLOT_MINUTES")
	if slotMinutes != 30 {
		slotMinutes = 60
	}

	floors := viper.GetIntSlice("FLOORS")
	if len(floors) == 0 {
		floors = []int{4, 5, 6, 7, 8, 9, 10, 12, 13}
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			CacheTTL: cacheTTL,
		},
		Schedule: ScheduleConfig{
			CSVPath:      viper.GetString("SCHEDULE_CSV_PATH"),
			SlotMinutes:  slotMinutes,
			Floors:       floors,
			FloorMapPath: viper.GetString("FLOOR_MAP_PATH"),
		},
	}

	return config, nil
}
