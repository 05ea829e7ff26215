package config

import (
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Airtable struct {
	BaseURL          string
	APIKey           string
	BaseID           string
	Table            string
	OrderNumberField string
	PhoneNumberField string
}

type Config struct {
	HTTPAddr  string
	RecentCap int

	// TrustCachedPhone: any cached record for a phone number short-circuits
	// the remote call. Matches the original behavior; pending product-owner
	// confirmation whether that staleness is wanted.
	TrustCachedPhone bool

	Airtable Airtable
}

// Load fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:         envDefault("HTTP_ADDR", ":8080"),
		RecentCap:        envInt("RECENT_CAP", 10),
		TrustCachedPhone: envBool("PHONE_CACHE_TRUST", true),

		Airtable: Airtable{
			BaseURL:          envDefault("AIRTABLE_BASE_URL", "https://api.airtable.com/v0"),
			APIKey:           strings.TrimSpace(os.Getenv("AIRTABLE_API_KEY")),
			BaseID:           strings.TrimSpace(os.Getenv("AIRTABLE_BASE_ID")),
			Table:            envDefault("AIRTABLE_TABLE_NAME", "Orders"),
			OrderNumberField: envDefault("ORDER_NUMBER_FIELD", "OrderNumber"),
			PhoneNumberField: envDefault("PHONE_NUMBER_FIELD", "PhoneNumber"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// The credential and base id have no defaults on purpose: a real key must
// never live in source.
func (c Config) validate() error {
	var missing []string
	req := map[string]string{
		"AIRTABLE_API_KEY": c.Airtable.APIKey,
		"AIRTABLE_BASE_ID": c.Airtable.BaseID,
	}
	for k, v := range req {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &missingEnvError{Keys: missing}
	}

	if c.RecentCap <= 0 {
		log.Printf("RECENT_CAP is %d, store will fall back to its default", c.RecentCap)
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %t: %v", k, v, def, err)
		return def
	}
	return b
}
