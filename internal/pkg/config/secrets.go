// internal/pkg/config/secrets.go
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// secretValueAPI is the slice of the Secrets Manager client the overlay
// needs. The concrete client satisfies it.
type secretValueAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// loadSecretsOverlay replaces credential fields with values from AWS
// Secrets Manager when AWS_SECRET_NAME is set. The secret must be a
// flat JSON object keyed like the environment variables it replaces.
func loadSecretsOverlay(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	secretName := os.Getenv("AWS_SECRET_NAME")
	if secretName == "" {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	data, err := fetchSecretData(ctx, secretsmanager.NewFromConfig(awsCfg), secretName)
	if err != nil {
		return err
	}

	logger.Info("applying secrets overlay",
		slog.String("secret_name", secretName),
		slog.Int("keys", len(data)))

	applySecretData(cfg, data)
	return nil
}

func fetchSecretData(ctx context.Context, client secretValueAPI, name string) (map[string]string, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(name),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret value: %w", err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string payload", name)
	}

	var data map[string]string
	if err := json.Unmarshal([]byte(*out.SecretString), &data); err != nil {
		return nil, fmt.Errorf("failed to parse secret JSON: %w", err)
	}

	return data, nil
}

// applySecretData copies known secret keys onto their config fields.
// Keys absent from the secret leave the environment-derived value in
// place.
func applySecretData(cfg *Config, data map[string]string) {
	if v, ok := data["DB_PASSWORD"]; ok {
		cfg.Database.Password = v
	}
	if v, ok := data["JWT_SECRET"]; ok {
		cfg.Security.JWTSecret = v
	}
	if v, ok := data["REDIS_PASSWORD"]; ok {
		cfg.Redis.Password = v
		cfg.Asynq.RedisPassword = v
	}
	if v, ok := data["AWS_ACCESS_KEY_ID"]; ok {
		cfg.AWS.AccessKeyID = v
	}
	if v, ok := data["AWS_SECRET_ACCESS_KEY"]; ok {
		cfg.AWS.SecretAccessKey = v
	}
}
