package api

import (
	"fmt"
	"net/http"
	"simcompare/pkg/simbackend"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const userIDKey = "userID"

type userClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

func parseJWT(jwtStr string, decodeToken string) (*userClaims, error) {
	claims := &userClaims{}
	token, err := jwt.ParseWithClaims(jwtStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse jwt: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("jwt is invalid")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("jwt has no subject")
	}

	return claims, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// authMiddleware verifies the caller's token and passes it on in the
// request ctx. the backend client reads it from there on every call
func (m ApiHandler) authMiddleware(c *gin.Context) {
	token := bearerToken(c)

	if m.AuthDisabled {
		c.Set(userIDKey, "local")
	} else {
		if token == "" {
			returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, http.StatusUnauthorized)
			return
		}
		claims, err := parseJWT(token, m.JwtDecodeToken)
		if err != nil {
			returnErrorJsonCode(err, c, http.StatusUnauthorized)
			return
		}
		c.Set(userIDKey, claims.Subject)
	}

	if token != "" {
		c.Request = c.Request.WithContext(simbackend.WithAccessToken(c.Request.Context(), token))
	}

	c.Next()
}
