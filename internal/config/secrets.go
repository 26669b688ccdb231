package config

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// fetchSecrets retrieves a JSON secret from AWS Secrets Manager and
// decodes it into a flat string map. The secret is expected to hold
// DATABASE_URL and JWT_SECRET.
func fetchSecrets(ctx context.Context, secretName string) (map[string]string, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := secretsmanager.NewFromConfig(awsCfg)
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret %q: %w", secretName, err)
	}

	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %q has no string value", secretName)
	}

	secrets := make(map[string]string)
	if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &secrets); err != nil {
		return nil, fmt.Errorf("failed to decode secret %q: %w", secretName, err)
	}
	return secrets, nil
}
