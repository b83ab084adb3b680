// internal/pkg/config/validators_test.go
package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productionConfig() *Config {
	return &Config{
		App: AppConfig{Environment: "production"},
		Database: DatabaseConfig{
			Password: "prod-db-pass",
			SSLMode:  "require",
		},
		Security: SecurityConfig{
			JWTSecret:      strings.Repeat("k", 48),
			BcryptCost:     12,
			SecureHeaders:  true,
			AllowedOrigins: []string{"https://app.packtrack.dev"},
		},
	}
}

func TestProductionValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid_production_config",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing_db_password",
			mutate:  func(cfg *Config) { cfg.Database.Password = "" },
			wantErr: "database password",
		},
		{
			name:    "default_jwt_secret",
			mutate:  func(cfg *Config) { cfg.Security.JWTSecret = "development-secret-change-in-production" },
			wantErr: "default JWT secret",
		},
		{
			name:    "ssl_disabled",
			mutate:  func(cfg *Config) { cfg.Database.SSLMode = "disable" },
			wantErr: "SSL must be enabled",
		},
		{
			name:    "tls_without_cert",
			mutate:  func(cfg *Config) { cfg.Server.TLSEnabled = true },
			wantErr: "TLS cert and key files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)

			err := (&ProductionValidator{}).Validate(cfg)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSecurityValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid_security_config",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "short_jwt_secret",
			mutate:  func(cfg *Config) { cfg.Security.JWTSecret = "short" },
			wantErr: "at least 32 characters",
		},
		{
			name:    "weak_bcrypt_cost",
			mutate:  func(cfg *Config) { cfg.Security.BcryptCost = 6 },
			wantErr: "bcrypt cost",
		},
		{
			name:    "wildcard_origin",
			mutate:  func(cfg *Config) { cfg.Security.AllowedOrigins = []string{"*"} },
			wantErr: "wildcard origin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)

			err := (&SecurityValidator{}).Validate(cfg)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
