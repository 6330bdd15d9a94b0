package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendLocal = "local"
	BackendCloud = "cloud"

	ParserLegacy = "legacy"
	ParserQuery  = "query"

	maxPageSize = 100
)

// Config holds everything read from the environment at startup.
type Config struct {
	YouTubeAPIKey string
	Host          string
	Port          int
	GinMode       string

	NLPBackend                 string
	NaturalLanguageCredentials string
	OpenAIAPIKey               string
	MapsAPIKey                 string

	TopEntities   int
	RollingWindow int
	HistogramBins int
	PageSize      int
	VideoIDParser string
}

// Load reads the .env file, if any, and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := &Config{
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		Host:          getEnv("HOST", ""),
		Port:          getEnvInt("PORT", 8060),
		GinMode:       getEnv("GIN_MODE", ""),

		NLPBackend:                 strings.ToLower(getEnv("NLP_BACKEND", BackendLocal)),
		NaturalLanguageCredentials: os.Getenv("NATURAL_LANGUAGE_CREDENTIALS"),
		OpenAIAPIKey:               os.Getenv("OPENAI_API_KEY"),
		MapsAPIKey:                 os.Getenv("MAPS_CREDENTIALS"),

		TopEntities:   getEnvInt("TOP_ENTITIES", 30),
		RollingWindow: getEnvInt("ROLLING_WINDOW", 20),
		HistogramBins: getEnvInt("HISTOGRAM_BINS", 20),
		PageSize:      getEnvInt("COMMENT_PAGE_SIZE", maxPageSize),
		VideoIDParser: strings.ToLower(getEnv("VIDEO_ID_PARSER", ParserLegacy)),
	}

	if cfg.PageSize <= 0 || cfg.PageSize > maxPageSize {
		cfg.PageSize = maxPageSize
	}

	return cfg
}

// Validate reports configuration the server cannot start without.
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return errors.New("YOUTUBE_API_KEY was not found in environment variables")
	}
	switch c.NLPBackend {
	case BackendLocal:
	case BackendCloud:
		if c.NaturalLanguageCredentials == "" {
			return errors.New("NLP_BACKEND=cloud requires NATURAL_LANGUAGE_CREDENTIALS")
		}
	default:
		return fmt.Errorf("unknown NLP_BACKEND %q", c.NLPBackend)
	}
	switch c.VideoIDParser {
	case ParserLegacy, ParserQuery:
	default:
		return fmt.Errorf("unknown VIDEO_ID_PARSER %q", c.VideoIDParser)
	}
	if c.TopEntities <= 0 || c.RollingWindow <= 0 || c.HistogramBins <= 0 {
		return errors.New("TOP_ENTITIES, ROLLING_WINDOW and HISTOGRAM_BINS must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
		log.Printf("Ignoring invalid %s=%q, using %d", key, val, fallback)
	}
	return fallback
}
