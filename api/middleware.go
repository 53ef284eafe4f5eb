package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/linesmerrill/dmv-records-api/access"
	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/databases"
	"github.com/linesmerrill/dmv-records-api/models"
)

// groups carried by the cached auth info
const (
	adminGroup      = "admin"
	roleGroupPrefix = "role:"
)

// Authenticator resolves the bearer token of a request into the caller's
// user and capabilities. Verified tokens are cached for TokenCacheTTL so the
// users table is not hit on every request.
type Authenticator struct {
	DB     databases.UserDatabase
	Secret []byte
	Roles  access.Roles

	authenticator auth.Authenticator
	cache         store.Cache
}

// NewAuthenticator sets up go-guardian with a cached bearer strategy that
// verifies HS256 tokens signed with the configured secret
func NewAuthenticator(ctx context.Context, db databases.UserDatabase, conf *config.Config) *Authenticator {
	a := &Authenticator{
		DB:     db,
		Secret: []byte(conf.JWTSecret),
		Roles:  access.Roles{LEORoleID: conf.LEORoleID, JudgeRoleID: conf.JudgeRoleID},
	}
	ttl := conf.TokenCacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	a.cache = store.NewFIFO(ctx, ttl)
	a.authenticator = auth.New()
	a.authenticator.EnableStrategy(bearer.CachedStrategyKey, bearer.New(a.ValidateToken, a.cache))
	return a
}

// Middleware authenticates the request and stores the caller's user and
// capabilities in its context. Unauthenticated requests get a 401.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := a.authenticator.Authenticate(r)
		if err != nil {
			zap.S().Debugw("unauthorized", "url", r.URL.String())
			config.ErrorStatus("unauthorized", http.StatusUnauthorized, w, err)
			return
		}
		user, err := userFromInfo(info)
		if err != nil {
			config.ErrorStatus("unauthorized", http.StatusUnauthorized, w, err)
			return
		}
		zap.S().Debugf("User %s Authenticated", user.Username)

		ctx := WithUser(r.Context(), user)
		ctx = WithCapabilities(ctx, access.For(user, a.Roles))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ValidateToken verifies a signed token and loads the user it names. It is
// only called on a cache miss.
func (a *Authenticator) ValidateToken(ctx context.Context, r *http.Request, token string) (auth.Info, error) {
	if len(a.Secret) == 0 {
		return nil, errors.New("token secret is not configured")
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return a.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject %q", claims.Subject)
	}
	qctx, cancel := WithQueryTimeout(ctx)
	defer cancel()
	user, err := a.DB.FindOne(qctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return infoFromUser(user), nil
}

// Revoke drops a token from the cache so the next request re-validates it
func (a *Authenticator) Revoke(r *http.Request, token string) error {
	return auth.Revoke(a.authenticator.Strategy(bearer.CachedStrategyKey), token, r)
}

func infoFromUser(u *models.User) auth.Info {
	groups := make([]string, 0, len(u.Roles)+1)
	if u.IsAdmin {
		groups = append(groups, adminGroup)
	}
	for _, role := range u.Roles {
		groups = append(groups, roleGroupPrefix+role.ID)
	}
	return auth.NewDefaultUser(u.Username, strconv.FormatInt(u.ID, 10), groups, nil)
}

func userFromInfo(info auth.Info) (*models.User, error) {
	id, err := strconv.ParseInt(info.ID(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q", info.ID())
	}
	u := &models.User{ID: id, Username: info.UserName(), Roles: models.Roles{}}
	for _, g := range info.Groups() {
		switch {
		case g == adminGroup:
			u.IsAdmin = true
		case strings.HasPrefix(g, roleGroupPrefix):
			u.Roles = append(u.Roles, models.Role{ID: strings.TrimPrefix(g, roleGroupPrefix)})
		}
	}
	return u, nil
}

// SignToken issues an HS256 token for the user, valid for ttl
func SignToken(secret []byte, userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString(secret)
}
