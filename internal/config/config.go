package config

import (
	"fmt"
	"os"
)

type Config struct {
	DatabaseURL  string
	Port         string
	UpstreamBase string
}

func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	upstream := os.Getenv("UPSTREAM_TWEET_API")
	if upstream == "" {
		upstream = "https://api.vxtwitter.com"
	}

	return &Config{
		DatabaseURL:  dbURL,
		Port:         port,
		UpstreamBase: upstream,
	}, nil
}
