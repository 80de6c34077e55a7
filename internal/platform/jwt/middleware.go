package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ContextUserID = "userID"

// unauthorizedMessage is the single response message for every
// authentication failure. Which check failed (bad token, bad subject,
// unknown user) is never revealed to the caller.
const unauthorizedMessage = "could not validate credentials"

// UserLookup resolves a token subject to a registered user.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (adapters).
type UserLookup interface {
	// Exists reports whether a user with the given ID is registered.
	Exists(ctx context.Context, id uint) (bool, error)
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
// The signing secret and the user lookup are injected at startup; the
// middleware never reads process state at request time.
func AuthRequired(secret string, users UserLookup) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		// 1. Authorizationヘッダーからベアラートークンを取得
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthorizedMessage})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. 署名と有効期限を検証
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// 署名アルゴリズムをチェック（HMACのみ許可）
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthorizedMessage})
			return
		}

		// 3. subjectクレームを抽出
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthorizedMessage})
			return
		}
		sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
		if !ok || sub <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthorizedMessage})
			return
		}
		userID := uint(sub)

		// 4. ユーザーが実在することを確認
		// トークンが有効でも、subjectのユーザーが存在しない場合は拒否する
		exists, err := users.Exists(c.Request.Context(), userID)
		if err != nil || !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthorizedMessage})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID set by AuthRequired.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}
