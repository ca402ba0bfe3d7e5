package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		c := DefaultConfig()
		c.Host = "localhost"
		c.Username = "txc"
		c.Password = "secret"
		c.Database = "txc"
		return c
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"ValidPostgres", func(c *Config) {}, ""},
		{"ValidSQLite", func(c *Config) { c.Driver = DriverSQLite; c.Host = ""; c.Password = "" }, ""},
		{"SQLiteWithoutPath", func(c *Config) { c.Driver = DriverSQLite; c.Database = "" }, "sqlite database path is required"},
		{"UnknownDriver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver"},
		{"MissingHost", func(c *Config) { c.Host = "" }, "host is required"},
		{"BadPort", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"BadSSLMode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"BadIsolation", func(c *Config) { c.IsolationLevel = "READ UNCOMMITTED" }, "invalid isolation level"},
		{"ZeroTimeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout"},
		{"NoRetries", func(c *Config) { c.RetryAttempts = 0 }, "retry attempts"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	c := DefaultConfig()
	c.Host, c.Username, c.Password, c.Database = "db", "u", "p", "txc"
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=txc sslmode=disable", c.DSN())

	c.Driver = DriverSQLite
	c.Database = "data/txc.db"
	assert.Equal(t, "data/txc.db", c.DSN())
}
