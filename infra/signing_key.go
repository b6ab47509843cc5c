package infra

import (
	"context"
	"crypto/rand"

	"github.com/cockroachdb/errors"

	"github.com/srct/whats-open/utils"
)

const minSigningKeyLength = 32

// ReadOrGenerateSigningKey returns the HMAC key used to sign access tokens. Outside
// development the key must be configured. In development a random key is generated, so
// tokens do not survive a restart.
func ReadOrGenerateSigningKey(ctx context.Context, secret, env string) ([]byte, error) {
	logger := utils.LoggerFromContext(ctx)
	if secret != "" {
		if len(secret) < minSigningKeyLength && env != "development" {
			return nil, errors.Newf("WOPEN_SECRET_KEY must be at least %d characters long", minSigningKeyLength)
		}
		return []byte(secret), nil
	}
	if env != "development" {
		return nil, errors.New("WOPEN_SECRET_KEY is required outside development")
	}

	logger.WarnContext(ctx, "WOPEN_SECRET_KEY is not set, generating a random signing key")
	key := make([]byte, minSigningKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Wrap(err, "could not generate a signing key")
	}
	return key, nil
}
