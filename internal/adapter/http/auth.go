package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ad-exchange/internal/core/domain"
)

// DeviceHeader carries the client's device id. The view counter is kept per
// device, like browser local storage.
const DeviceHeader = "X-Device-ID"

// Authenticator verifies HS256 bearer tokens whose subject is the user id.
type Authenticator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewAuthenticator returns an authenticator for secret. An empty issuer
// accepts tokens from any issuer.
func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Issue signs a token for userID valid for ttl.
func (a *Authenticator) Issue(userID string, ttl time.Duration) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    a.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify parses token and returns its subject.
func (a *Authenticator) Verify(token string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", domain.ErrUnauthenticated)
	}
	return claims.Subject, nil
}

type viewerKey struct{}

// authenticate resolves the viewer from the Authorization header. Requests
// without a valid token are answered with 401 and a pointer to the login
// screen.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			h.writeError(w, r, domain.ErrUnauthenticated)
			return
		}
		userID, err := h.auth.Verify(raw)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		viewer := domain.Viewer{UserID: userID, DeviceID: r.Header.Get(DeviceHeader)}
		if viewer.DeviceID == "" {
			viewer.DeviceID = userID
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), viewerKey{}, viewer)))
	})
}

// viewerFrom returns the authenticated viewer.
func viewerFrom(ctx context.Context) (domain.Viewer, error) {
	v, ok := ctx.Value(viewerKey{}).(domain.Viewer)
	if !ok {
		return domain.Viewer{}, errors.New("no viewer in context")
	}
	return v, nil
}
