package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService autentica a los frontends del bot (clientes de API, no
// usuarios finales) con credenciales de cliente y emite tokens de acceso.
type AuthService struct {
	clientID         string
	clientSecretHash string
	secret           []byte
	accessTTL        time.Duration
	issuer           string
}

// Claims son los claims de acceso del API.
type Claims struct {
	ClientID  string `json:"cid"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrInvalidCredentials = errors.New("invalid client credentials")
	ErrJWTInvalid         = errors.New("jwt invalid")
	ErrJWTExpired         = errors.New("jwt expired")
)

func NewAuthService(clientID, clientSecretHash, jwtSecret string, accessTTL time.Duration) *AuthService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	return &AuthService{
		clientID:         clientID,
		clientSecretHash: clientSecretHash,
		secret:           []byte(jwtSecret),
		accessTTL:        accessTTL,
		issuer:           "numero-bot",
	}
}

// Login valida las credenciales del cliente contra el hash bcrypt
// configurado y devuelve un token de acceso firmado.
func (s *AuthService) Login(clientID, clientSecret string) (string, int64, error) {
	if len(s.secret) == 0 || s.clientID == "" || s.clientSecretHash == "" {
		return "", 0, ErrInvalidCredentials
	}
	if clientID != s.clientID {
		return "", 0, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.clientSecretHash), []byte(clientSecret)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := Claims{
		ClientID:  clientID,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(s.accessTTL.Seconds()), nil
}

// ParseAccessToken valida un token de acceso y devuelve sus claims.
func (s *AuthService) ParseAccessToken(accessToken string) (Claims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(accessToken) == "" {
		return Claims{}, ErrJWTInvalid
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(accessToken, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrJWTExpired
		}
		return Claims{}, ErrJWTInvalid
	}

	if claims.TokenType != "access" {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(claims.ClientID) == "" || claims.Subject != claims.ClientID {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(claims.Issuer) != s.issuer {
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}
