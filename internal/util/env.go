package util

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// GetEnv returns the value of the environment variable with the given key or the provided default value.
func GetEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

// GetEnvAsInt returns the value of the environment variable with the given key parsed as int or the provided default value.
func GetEnvAsInt(key string, defaultVal int) int {
	strVal := GetEnv(key, "")

	if value, err := strconv.Atoi(strVal); err == nil {
		return value
	}

	return defaultVal
}

// GetEnvAsInt64 returns the value of the environment variable with the given key parsed as int64 or the provided default value.
func GetEnvAsInt64(key string, defaultVal int64) int64 {
	strVal := GetEnv(key, "")

	if value, err := strconv.ParseInt(strVal, 10, 64); err == nil {
		return value
	}

	return defaultVal
}

// GetEnvAsUint32 returns the value of the environment variable with the given key parsed as uint32 or the provided default value.
func GetEnvAsUint32(key string, defaultVal uint32) uint32 {
	strVal := GetEnv(key, "")

	if value, err := strconv.ParseUint(strVal, 10, 32); err == nil {
		return uint32(value)
	}

	return defaultVal
}

// GetEnvAsFloat64 returns the value of the environment variable with the given key parsed as float64 or the provided default value.
func GetEnvAsFloat64(key string, defaultVal float64) float64 {
	strVal := GetEnv(key, "")

	if value, err := strconv.ParseFloat(strVal, 64); err == nil {
		return value
	}

	return defaultVal
}

// GetEnvAsBool returns the value of the environment variable with the given key parsed as bool or the provided default value.
func GetEnvAsBool(key string, defaultVal bool) bool {
	strVal := GetEnv(key, "")

	if value, err := strconv.ParseBool(strVal); err == nil {
		return value
	}

	return defaultVal
}

// GetEnvAsStringArr reads ENV and returns the values split by separator.
func GetEnvAsStringArr(key string, defaultVal []string, separator ...string) []string {
	strVal := GetEnv(key, "")

	if len(strVal) == 0 {
		return defaultVal
	}

	sep := ","
	if len(separator) >= 1 {
		sep = separator[0]
	}

	return strings.Split(strVal, sep)
}

// GetEnvAsStringArrTrimmed reads ENV and returns the whitespace trimmed values split by separator.
func GetEnvAsStringArrTrimmed(key string, defaultVal []string, separator ...string) []string {
	slc := GetEnvAsStringArr(key, defaultVal, separator...)

	for i := range slc {
		slc[i] = strings.TrimSpace(slc[i])
	}

	return slc
}

// GetEnvEnum returns the value of the environment variable if it is contained in allowedValues, otherwise the default value.
// Panics if the default value itself is not part of allowedValues.
func GetEnvEnum(key string, defaultVal string, allowedValues []string) string {
	if !ContainsString(allowedValues, defaultVal) {
		log.Panic().Str("key", key).Str("default", defaultVal).Msg("Default value is not in the allowed values for enum environment variable")
	}

	strVal := GetEnv(key, defaultVal)

	if !ContainsString(allowedValues, strVal) {
		log.Error().Str("key", key).Str("value", strVal).Msg("Unsupported value for enum environment variable, fallback to default")
		return defaultVal
	}

	return strVal
}

// GetMgmtSecret returns the management secret from ENV or generates a random one.
// A generated secret changes on every restart, supply the variable explicitly for stable probes.
func GetMgmtSecret(envKey string) string {
	val := GetEnv(envKey, "")

	if len(val) > 0 {
		return val
	}

	rnd, err := GenerateRandomHexString(16)
	if err != nil {
		log.Panic().Err(err).Str("key", envKey).Msg("Failed to generate random management secret")
	}

	return rnd
}
