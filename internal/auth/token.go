package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/models"
)

// Issuer is the iss claim stamped into every issued token.
const Issuer = "todo-app-auth"

// Verification failure kinds. Callers map all of these to a generic 401
// externally; the distinction exists for server-side logs only.
var (
	ErrTokenExpired     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrMalformedToken   = errors.New("malformed token")
	ErrMissingClaim     = errors.New("token is missing a valid user_id claim")
)

// Claims is the JWT payload. user_id is serialized as a string on the wire.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Identity is the request-scoped result of verifying a token. It is never
// persisted; it lives only for the duration of one request.
type Identity struct {
	UserID    uint64
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec issues and verifies signed, time-bound bearer tokens using a
// symmetric secret. Verification is pure computation and safe for concurrent
// use across requests.
type TokenCodec struct {
	secret []byte
	method jwt.SigningMethod
}

// NewTokenCodec builds a codec for the given secret and HMAC signing
// algorithm name (e.g. "HS256").
func NewTokenCodec(secret, algorithm string) (*TokenCodec, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not symmetric", algorithm)
	}
	return &TokenCodec{secret: []byte(secret), method: method}, nil
}

// Issue signs a token carrying the user's identity, valid for ttl from now.
func (c *TokenCodec) Issue(user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	id := strconv.FormatUint(user.ID, 10)

	claims := Claims{
		UserID: id,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   "user:" + id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// Verify checks the signature, expiry and issued-at of a token and returns
// the identity it asserts. Claims are only ever read through this verified
// path.
func (c *TokenCodec) Verify(tokenString string) (*Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{c.method.Alg()}), jwt.WithIssuedAt(), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformedToken
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
	}

	if claims.UserID == "" {
		return nil, ErrMissingClaim
	}
	userID, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return nil, ErrMissingClaim
	}

	ident := &Identity{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}
	if claims.IssuedAt != nil {
		ident.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		ident.ExpiresAt = claims.ExpiresAt.Time
	}

	return ident, nil
}
