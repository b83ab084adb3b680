// internal/pkg/config/secrets_test.go
package config

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSecretValueAPI struct {
	payload *string
	err     error
}

func (s *stubSecretValueAPI) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: s.payload}, nil
}

func TestFetchSecretData(t *testing.T) {
	tests := []struct {
		name     string
		client   *stubSecretValueAPI
		expected map[string]string
		wantErr  string
	}{
		{
			name:     "flat_json_payload",
			client:   &stubSecretValueAPI{payload: aws.String(`{"DB_PASSWORD":"s3cret","JWT_SECRET":"signing-key"}`)},
			expected: map[string]string{"DB_PASSWORD": "s3cret", "JWT_SECRET": "signing-key"},
		},
		{
			name:    "api_error",
			client:  &stubSecretValueAPI{err: fmt.Errorf("access denied")},
			wantErr: "failed to get secret value",
		},
		{
			name:    "missing_string_payload",
			client:  &stubSecretValueAPI{},
			wantErr: "no string payload",
		},
		{
			name:    "malformed_json",
			client:  &stubSecretValueAPI{payload: aws.String(`not-json`)},
			wantErr: "failed to parse secret JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := fetchSecretData(context.Background(), tt.client, "packtrack/prod")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, data)
		})
	}
}

func TestApplySecretData(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Password: "env-db-pass"},
		Security: SecurityConfig{JWTSecret: "env-jwt"},
		Redis:    RedisConfig{Password: "env-redis"},
		Asynq:    AsynqConfig{RedisPassword: "env-redis"},
		AWS:      AWSConfig{AccessKeyID: "env-key", SecretAccessKey: "env-secret"},
	}

	applySecretData(cfg, map[string]string{
		"DB_PASSWORD":    "vault-db-pass",
		"JWT_SECRET":     "vault-jwt",
		"REDIS_PASSWORD": "vault-redis",
		"UNKNOWN_KEY":    "ignored",
	})

	assert.Equal(t, "vault-db-pass", cfg.Database.Password)
	assert.Equal(t, "vault-jwt", cfg.Security.JWTSecret)
	assert.Equal(t, "vault-redis", cfg.Redis.Password)
	assert.Equal(t, "vault-redis", cfg.Asynq.RedisPassword)

	// Keys absent from the secret keep their env values
	assert.Equal(t, "env-key", cfg.AWS.AccessKeyID)
	assert.Equal(t, "env-secret", cfg.AWS.SecretAccessKey)
}

func TestApplySecretData_EmptyOverlay(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Password: "env-db-pass"},
		Security: SecurityConfig{JWTSecret: "env-jwt"},
	}

	applySecretData(cfg, map[string]string{})

	assert.Equal(t, "env-db-pass", cfg.Database.Password)
	assert.Equal(t, "env-jwt", cfg.Security.JWTSecret)
}
