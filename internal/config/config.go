package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	SearchDepth    int
	SearchParallel bool
	AiSeed         int64
	EmptyChar      string
	Player1Char    string
	Player2Char    string
	AutoPlay       bool
	ShowTime       bool
}

var AppConfig *Config

func LoadConfig() *Config {
	// Search
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", 8)
	searchParallel := GetEnvAsBool("SEARCH_PARALLEL", true)
	aiSeed := int64(GetEnvAsInt("AI_SEED", 0)) // 0 means derive one at startup

	// Board rendering
	emptyChar := GetEnv("EMPTY_CHAR", ".")
	player1Char := GetEnv("PLAYER1_CHAR", "X")
	player2Char := GetEnv("PLAYER2_CHAR", "O")

	// Driver pacing
	autoPlay := GetEnvAsBool("AUTO_PLAY", true)
	showTime := GetEnvAsBool("SHOW_TIME", false)

	AppConfig = &Config{
		SearchDepth:    searchDepth,
		SearchParallel: searchParallel,
		AiSeed:         aiSeed,
		EmptyChar:      emptyChar,
		Player1Char:    player1Char,
		Player2Char:    player2Char,
		AutoPlay:       autoPlay,
		ShowTime:       showTime,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
