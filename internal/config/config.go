package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	BaseURL         string
	CredentialsPath string
	CredEncKey      []byte // optional; 32 bytes for AES-256-GCM, base64 in env

	RetryInterval    time.Duration // pause between attempt cycles
	LocationInterval time.Duration // pause between locations in a sweep
	PageTimeout      time.Duration // bound for page-element waits
	Headless         bool

	DatabaseURL string // empty disables the attempt log
	StatusAddr  string // empty disables the status server
}

func FromEnv() (Config, error) {
	cfg := Config{
		BaseURL:         strings.TrimRight(getenv("BASE_URL", "https://ais.usvisa-info.com/en-ca/niv"), "/"),
		CredentialsPath: getenv("CONFIG_PATH", "config.json"),
		Headless:        getenv("HEADLESS", "1") != "0",
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		StatusAddr:      strings.TrimSpace(os.Getenv("STATUS_ADDR")),
	}

	retrySec, err := strconv.Atoi(getenv("RETRY_INTERVAL_SECONDS", "60"))
	if err != nil || retrySec < 1 {
		return Config{}, fmt.Errorf("invalid RETRY_INTERVAL_SECONDS")
	}
	cfg.RetryInterval = time.Duration(retrySec) * time.Second

	locSec, err := strconv.Atoi(getenv("LOCATION_INTERVAL_SECONDS", "10"))
	if err != nil || locSec < 0 {
		return Config{}, fmt.Errorf("invalid LOCATION_INTERVAL_SECONDS")
	}
	cfg.LocationInterval = time.Duration(locSec) * time.Second

	timeoutMS, err := strconv.Atoi(getenv("PAGE_TIMEOUT_MS", "15000"))
	if err != nil || timeoutMS < 1 {
		return Config{}, fmt.Errorf("invalid PAGE_TIMEOUT_MS")
	}
	cfg.PageTimeout = time.Duration(timeoutMS) * time.Millisecond

	if v := strings.TrimSpace(os.Getenv("CRED_ENC_KEY")); v != "" {
		key, err := decodeB64(v)
		if err != nil {
			return Config{}, fmt.Errorf("CRED_ENC_KEY: %w", err)
		}
		if len(key) != 32 {
			return Config{}, fmt.Errorf("CRED_ENC_KEY must decode to 32 bytes (got %d)", len(key))
		}
		cfg.CredEncKey = key
	}

	return cfg, nil
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func decodeB64(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
