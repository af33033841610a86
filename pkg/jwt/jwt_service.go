package jwt

import (
	"errors"
	"fmt"
	"restaurant-backend/domain"
	"restaurant-backend/internal/utils"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateSessionToken(sessionID, userID, role string, expiresAt time.Time) (string, error)
		ParseSessionToken(token string) (*SessionClaims, error)
	}

	SessionClaims struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

const issuer = "RESTAURANT"

func getSecretKey() string {
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return NewJWTServiceWithSecret(getSecretKey())
}

func NewJWTServiceWithSecret(secret string) JWTService {
	return &jwtService{
		secretKey: secret,
		issuer:    issuer,
	}
}

// GenerateSessionToken signs a token whose ID claim is the guard's session id.
func (j *jwtService) GenerateSessionToken(sessionID, userID, role string, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		userID,
		role,
		jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

// ParseSessionToken returns the claims of a valid token. A correctly signed
// token that failed only its expiry check comes back with its claims and
// domain.ErrTokenExpired, so the caller can tell which session ran out.
func (j *jwtService) ParseSessionToken(token string) (*SessionClaims, error) {
	t_Token, err := jwt.ParseWithClaims(token, &SessionClaims{}, j.parseToken)
	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) && verr.Errors == jwt.ValidationErrorExpired {
			if claims, ok := t_Token.Claims.(*SessionClaims); ok && claims.ID != "" {
				return claims, domain.ErrTokenExpired
			}
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*SessionClaims)
	if !ok || claims.ID == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
