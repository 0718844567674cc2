package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"net/http"

	"github.com/tinytickets/tinytickets/internal/shared/authorization"
	"github.com/tinytickets/tinytickets/internal/shared/constants"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
)

const (
	// AdminTokenPrefix and UserTokenPrefix namespace the two secrets so a
	// raw secret can never be valid for both tiers.
	AdminTokenPrefix = "$ADMIN$"
	UserTokenPrefix  = "$USER$"

	// SecretLength is the length of generated secrets.
	SecretLength = 48

	secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Secrets holds the two prefixed role tokens. It is built once at startup and
// never changes.
type Secrets struct {
	admin string
	user  string

	adminGenerated bool
	userGenerated  bool
}

// NewSecrets prefixes the configured secrets, generating a random one for
// each empty value.
func NewSecrets(adminSecret, userSecret string) (Secrets, error) {
	var s Secrets
	var err error

	if adminSecret == "" {
		if adminSecret, err = GenerateSecret(SecretLength); err != nil {
			return Secrets{}, fmt.Errorf("failed to generate admin secret: %w", err)
		}
		s.adminGenerated = true
	}
	if userSecret == "" {
		if userSecret, err = GenerateSecret(SecretLength); err != nil {
			return Secrets{}, fmt.Errorf("failed to generate user secret: %w", err)
		}
		s.userGenerated = true
	}

	s.admin = AdminTokenPrefix + adminSecret
	s.user = UserTokenPrefix + userSecret
	return s, nil
}

// AdminToken is the full X-TOKEN value granting the admin tier.
func (s Secrets) AdminToken() string {
	return s.admin
}

// UserToken is the full X-TOKEN value granting the user tier.
func (s Secrets) UserToken() string {
	return s.user
}

func (s Secrets) AdminGenerated() bool {
	return s.adminGenerated
}

func (s Secrets) UserGenerated() bool {
	return s.userGenerated
}

// GenerateSecret returns n random alphanumeric characters from crypto/rand.
func GenerateSecret(n int) (string, error) {
	max := big.NewInt(int64(len(secretAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = secretAlphabet[idx.Int64()]
	}
	return string(out), nil
}

// TokenAuthenticator classifies the X-TOKEN header of a request.
type TokenAuthenticator struct {
	admin []byte
	user  []byte
}

func NewTokenAuthenticator(secrets Secrets) *TokenAuthenticator {
	return &TokenAuthenticator{
		admin: []byte(secrets.admin),
		user:  []byte(secrets.user),
	}
}

// Classify returns the tier granted by the X-TOKEN header, or an
// unauthorized or forbidden AppError.
func (a *TokenAuthenticator) Classify(header http.Header) (authorization.Tier, error) {
	values := header.Values(constants.HeaderXToken)
	if len(values) == 0 {
		return authorization.TierRejected, errors.NewTokenMissingError()
	}

	token := values[0]
	if !isVisibleASCII(token) {
		return authorization.TierRejected, errors.NewTokenCorruptedError()
	}

	// Both comparisons always run.
	isAdmin := subtle.ConstantTimeCompare([]byte(token), a.admin) == 1
	isUser := subtle.ConstantTimeCompare([]byte(token), a.user) == 1

	switch {
	case isAdmin:
		return authorization.TierAdmin, nil
	case isUser:
		return authorization.TierUser, nil
	default:
		return authorization.TierRejected, errors.NewAccessDeniedError()
	}
}

// isVisibleASCII accepts what an HTTP header value may carry as text:
// printable ASCII and horizontal tab.
func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\t' {
			continue
		}
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}
