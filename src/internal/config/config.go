package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const defaultPort = "8080"

type SeedAccount struct {
	AccountID string
	Balance   decimal.Decimal
}

type Config struct {
	Port             string
	NotifyWebhookURL string
	SeedAccounts     []SeedAccount
}

// Load reads configuration from the environment, with an optional .env
// file for local runs. SEED_ACCOUNTS is a comma-separated list of
// id=balance pairs provisioned at startup, e.g. "ACC-1=2000,ACC-2=500".
func Load() (Config, error) {
	_ = godotenv.Load()

	seeds, err := parseSeedAccounts(os.Getenv("SEED_ACCOUNTS"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:             getEnv("PORT", defaultPort),
		NotifyWebhookURL: strings.TrimSpace(os.Getenv("NOTIFY_WEBHOOK_URL")),
		SeedAccounts:     seeds,
	}, nil
}

func parseSeedAccounts(raw string) ([]SeedAccount, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var seeds []SeedAccount
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("seed account %q must be in id=balance form", pair)
		}

		accountID := strings.TrimSpace(kv[0])
		if accountID == "" {
			return nil, fmt.Errorf("seed account %q has an empty id", pair)
		}

		balance, err := decimal.NewFromString(strings.TrimSpace(kv[1]))
		if err != nil {
			return nil, fmt.Errorf("seed account %q has an invalid balance: %w", pair, err)
		}
		if balance.IsNegative() {
			return nil, fmt.Errorf("seed account %q has a negative balance", pair)
		}

		seeds = append(seeds, SeedAccount{AccountID: accountID, Balance: balance})
	}

	return seeds, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
