package config

import (
	"fmt"
	"net/url"
	"slices"
)

var mailDrivers = []string{"log", "smtp"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	if c.Notify.Workers < 1 {
		return fmt.Errorf("notify.workers must be >= 1 (got %d)", c.Notify.Workers)
	}
	if c.Notify.QueueSize < 1 {
		return fmt.Errorf("notify.queue_size must be >= 1 (got %d)", c.Notify.QueueSize)
	}

	if _, err := url.ParseRequestURI(c.Site.BaseURL); err != nil {
		return fmt.Errorf("site.base_url: %w", err)
	}

	return nil
}

func (c *CacheConfig) validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be >= 1 (got %d)", c.Capacity)
	}
	for name, ttl := range map[string]int64{
		"tool_ttl":     int64(c.ToolTTL),
		"list_ttl":     int64(c.ListTTL),
		"category_ttl": int64(c.CategoryTTL),
		"post_ttl":     int64(c.PostTTL),
	} {
		if ttl <= 0 {
			return fmt.Errorf("%s must be > 0", name)
		}
	}
	return nil
}

func (m *MailConfig) validate() error {
	if !slices.Contains(mailDrivers, m.Driver) {
		return fmt.Errorf("driver must be one of %v (got %q)", mailDrivers, m.Driver)
	}
	if m.Driver == "smtp" && m.Host == "" {
		return fmt.Errorf("host is required for the smtp driver")
	}
	return nil
}
