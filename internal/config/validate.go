package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.AdminUsername) == "" {
		return fmt.Errorf("auth.admin_username is required")
	}
	if !strings.HasPrefix(c.Auth.AdminPasswordHash, "$2") {
		return fmt.Errorf("auth.admin_password_hash must be a bcrypt hash")
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.Notify.TTL < 0 {
		return fmt.Errorf("notify.ttl must be >= 0 (got %v)", c.Notify.TTL)
	}
	if c.Composer.DefaultDuration < 1 {
		return fmt.Errorf("composer.default_duration must be >= 1 (got %d)", c.Composer.DefaultDuration)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_url must be an absolute URL (got %q)", c.APIURL)
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if !IsIdentifier(d.CollectionName) {
		return fmt.Errorf("collection_name %q is not a valid table name", d.CollectionName)
	}
	if !IsIdentifier(d.LanguagesTable) {
		return fmt.Errorf("languages_table %q is not a valid table name", d.LanguagesTable)
	}
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

// IsIdentifier reports whether s is safe to use as an unquoted SQL table name.
func IsIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}
