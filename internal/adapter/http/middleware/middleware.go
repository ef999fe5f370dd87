package middleware

import (
	"net/http"
	"strings"
	"time"

	"rfq_console/internal/domain/entities"
	"rfq_console/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ctxRequestID = "request_id"
	ctxSession   = "session"
)

var (
	errAuthRequired  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
	errInvalidToken  = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errInvalidClaims = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid token claims", http.StatusUnauthorized)
)

// Logger writes one structured line per request.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(ctxRequestID)),
		}
		if sess, ok := SessionFrom(c); ok {
			fields = append(fields, zap.String("user_id", sess.UserID))
		}

		switch {
		case status >= 500:
			logger.Error("[http] server error", fields...)
		case status >= 400:
			logger.Warn("[http] client error", fields...)
		default:
			logger.Info("[http] request", fields...)
		}
	}
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ctxRequestID, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// SessionClaims are the console session claims: sub carries the user id and
// role_id the workflow role.
type SessionClaims struct {
	RoleID int `json:"role_id"`
	jwt.RegisteredClaims
}

// Session authenticates the bearer token and stores the user session on the
// context.
func Session(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		if parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = strings.TrimSpace(parts[1])
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		claims, ok := token.Claims.(*SessionClaims)
		if !ok || !token.Valid || strings.TrimSpace(claims.Subject) == "" {
			c.AbortWithStatusJSON(errInvalidClaims.HTTPStatus, errInvalidClaims.ToHTTPError())
			return
		}

		c.Set(ctxSession, entities.Session{UserID: claims.Subject, RoleID: entities.Role(claims.RoleID)})
		c.Next()
	}
}

func SessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(ctxSession)
	if !ok {
		return entities.Session{}, false
	}
	sess, ok := v.(entities.Session)
	return sess, ok
}

// SetSession stores sess on the context. Used by handler tests.
func SetSession(c *gin.Context, sess entities.Session) {
	c.Set(ctxSession, sess)
}

// IssueToken signs a session token for userID and roleID.
func IssueToken(secret, issuer, userID string, roleID int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
