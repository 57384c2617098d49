package helper

import (
	"errors"
	"time"

	"hotel_gateway/config"
	"hotel_gateway/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

// GenerateSessionToken mints the gateway's own HS256 cookie token. It only
// carries the session id; the upstream bearer token stays server-side.
func GenerateSessionToken(sessionID string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sessionId"] = sessionID
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	return token.SignedString(jwtSecret())
}

// ParseSessionToken validates a session token and returns the session id.
func ParseSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}
	sessionID, _ := claims["sessionId"].(string)
	if sessionID == "" {
		return "", errors.New("session id missing from token")
	}
	return sessionID, nil
}

// SessionFromCtx pulls the session loaded by the middleware, if any.
func SessionFromCtx(c *fiber.Ctx) (string, *model.SessionData) {
	sessionID, _ := c.Locals("sessionId").(string)
	data, _ := c.Locals("session").(*model.SessionData)
	return sessionID, data
}
