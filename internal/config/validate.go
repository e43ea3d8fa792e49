package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.BasePath != "" && (!strings.HasPrefix(c.Server.BasePath, "/") || strings.HasSuffix(c.Server.BasePath, "/")) {
		return fmt.Errorf("server.base_path must start and not end with '/' (got %q)", c.Server.BasePath)
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Inventory.validate(); err != nil {
		return fmt.Errorf("inventory: %w", err)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.SessionTTL < time.Minute {
		return fmt.Errorf("session_ttl must be >= 1m (got %v)", a.SessionTTL)
	}
	if a.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be > 0 (got %v)", a.SweepInterval)
	}
	if strings.TrimSpace(a.CookieName) == "" {
		return fmt.Errorf("cookie_name is required")
	}
	if a.LoginRateLimit <= 0 {
		return fmt.Errorf("login_rate_limit must be > 0 (got %d)", a.LoginRateLimit)
	}
	return nil
}

func (i *InventoryConfig) validate() error {
	if strings.TrimSpace(i.DefaultActor) == "" {
		return fmt.Errorf("default_actor is required")
	}
	if i.TrendDays < 1 || i.TrendDays > 366 {
		return fmt.Errorf("trend_days must be in 1..366 (got %d)", i.TrendDays)
	}
	if i.RevenueMonths < 1 || i.RevenueMonths > 36 {
		return fmt.Errorf("revenue_months must be in 1..36 (got %d)", i.RevenueMonths)
	}
	if i.TransactionsLimit <= 0 {
		return fmt.Errorf("transactions_limit must be > 0 (got %d)", i.TransactionsLimit)
	}
	if i.ExportMaxRows <= 0 {
		return fmt.Errorf("export_max_rows must be > 0 (got %d)", i.ExportMaxRows)
	}
	return nil
}
