package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrOpaque is returned for tokens that are not JWTs.
var ErrOpaque = errors.New("token is not a JWT")

// Claims are the unverified claims of a bearer token. The signature is the
// API's business; the client only reads what it needs for housekeeping.
type Claims struct {
	claims jwt.MapClaims
}

func Parse(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, errors.Wrap(ErrOpaque, err.Error())
	}
	return &Claims{claims: claims}, nil
}

// Subject is sub, or the _id/id/sid claim some issuers use instead.
func (c *Claims) Subject() string {
	for _, key := range []string{"sub", "_id", "id", "sid"} {
		if s, ok := c.claims[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func (c *Claims) Email() string {
	s, _ := c.claims["email"].(string)
	return s
}

// ExpiresAt reports ok=false when there is no usable exp claim.
func (c *Claims) ExpiresAt() (time.Time, bool) {
	exp, err := c.claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (c *Claims) Expired(now time.Time) bool {
	exp, ok := c.ExpiresAt()
	return ok && exp.Before(now)
}
