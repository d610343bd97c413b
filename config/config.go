package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Number of concurrent simulation workers.
	Workers int

	// Bounding box random trip endpoints are drawn from.
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64

	CancelProbability         float64
	PaymentFailureProbability float64

	BaseFare       float64
	PricePerKm     float64
	PricePerMinute float64

	SpeedMinKmh float64
	SpeedMaxKmh float64

	// Per-transition delay ranges, whole seconds, inclusive.
	RideStartDelayMin      int
	RideStartDelayMax      int
	RideResolveDelayMin    int
	RideResolveDelayMax    int
	PaymentProcessDelayMin int
	PaymentProcessDelayMax int
	PaymentSettleDelayMin  int
	PaymentSettleDelayMax  int
	WorkerIdleDelayMin     int
	WorkerIdleDelayMax     int
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "ride-simulator"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "postgres"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "uber-race"))

	cfg.Workers = cast.ToInt(getOrReturnDefault("WORKERS", 10))

	// Fortaleza metro area.
	cfg.LatMin = cast.ToFloat64(getOrReturnDefault("LAT_MIN", -3.90))
	cfg.LatMax = cast.ToFloat64(getOrReturnDefault("LAT_MAX", -3.65))
	cfg.LonMin = cast.ToFloat64(getOrReturnDefault("LON_MIN", -38.70))
	cfg.LonMax = cast.ToFloat64(getOrReturnDefault("LON_MAX", -38.40))

	cfg.CancelProbability = cast.ToFloat64(getOrReturnDefault("CANCEL_PROBABILITY", 0.15))
	cfg.PaymentFailureProbability = cast.ToFloat64(getOrReturnDefault("PAYMENT_FAILURE_PROBABILITY", 0.08))

	cfg.BaseFare = cast.ToFloat64(getOrReturnDefault("BASE_FARE", 5.0))
	cfg.PricePerKm = cast.ToFloat64(getOrReturnDefault("PRICE_PER_KM", 2.5))
	cfg.PricePerMinute = cast.ToFloat64(getOrReturnDefault("PRICE_PER_MINUTE", 0.4))

	cfg.SpeedMinKmh = cast.ToFloat64(getOrReturnDefault("SPEED_MIN_KMH", 20.0))
	cfg.SpeedMaxKmh = cast.ToFloat64(getOrReturnDefault("SPEED_MAX_KMH", 40.0))

	cfg.RideStartDelayMin = cast.ToInt(getOrReturnDefault("RIDE_START_DELAY_MIN", 1))
	cfg.RideStartDelayMax = cast.ToInt(getOrReturnDefault("RIDE_START_DELAY_MAX", 3))
	cfg.RideResolveDelayMin = cast.ToInt(getOrReturnDefault("RIDE_RESOLVE_DELAY_MIN", 3))
	cfg.RideResolveDelayMax = cast.ToInt(getOrReturnDefault("RIDE_RESOLVE_DELAY_MAX", 7))
	cfg.PaymentProcessDelayMin = cast.ToInt(getOrReturnDefault("PAYMENT_PROCESS_DELAY_MIN", 2))
	cfg.PaymentProcessDelayMax = cast.ToInt(getOrReturnDefault("PAYMENT_PROCESS_DELAY_MAX", 3))
	cfg.PaymentSettleDelayMin = cast.ToInt(getOrReturnDefault("PAYMENT_SETTLE_DELAY_MIN", 1))
	cfg.PaymentSettleDelayMax = cast.ToInt(getOrReturnDefault("PAYMENT_SETTLE_DELAY_MAX", 3))
	cfg.WorkerIdleDelayMin = cast.ToInt(getOrReturnDefault("WORKER_IDLE_DELAY_MIN", 1))
	cfg.WorkerIdleDelayMax = cast.ToInt(getOrReturnDefault("WORKER_IDLE_DELAY_MAX", 4))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
