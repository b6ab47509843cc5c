package repositories

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/clock"
)

const tokenIssuer = "whats-open"

type JwtRepository struct {
	signingKey []byte
	clock      clock.Clock
}

// We add jwt.RegisteredClaims as an embedded type, to provide fields like expiry time
type Claims struct {
	Credentials dto.Credentials `json:"credentials"`
	jwt.RegisteredClaims
}

var ValidationAlgo = jwt.SigningMethodHS256

func (repo *JwtRepository) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	claims := &Claims{
		Credentials: dto.AdaptCredentialDto(creds),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   creds.Username,
			IssuedAt:  jwt.NewNumericDate(repo.clock.Now()),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(ValidationAlgo, claims)
	return token.SignedString(repo.signingKey)
}

func (repo *JwtRepository) ValidateToken(tokenString string) (models.Credentials, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return repo.signingKey, nil
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		keyFunc,
		jwt.WithValidMethods([]string{ValidationAlgo.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(repo.clock.Now),
	)
	if err != nil {
		return models.Credentials{}, errors.Join(
			models.UnAuthorizedError,
			errors.Wrap(err, "Error parsing jwt token claims"),
		)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return dto.AdaptCredentials(claims.Credentials), nil
	}
	return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "invalid jwt token")
}

func NewJWTRepository(signingKey []byte, c clock.Clock) *JwtRepository {
	return &JwtRepository{
		signingKey: signingKey,
		clock:      c,
	}
}
