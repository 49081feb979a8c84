package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleFromToken decodes the role claim without verifying the signature.
// The decode is a UI hint only: a forged claim shows admin buttons whose
// actions the backend will still reject. A malformed token degrades to
// RoleNone; no error surfaces to the caller.
func RoleFromToken(token string) Role {
	claims := decodeClaims(token)
	if claims == nil {
		return RoleNone
	}
	if role, _ := claims["role"].(string); role == "admin" {
		return RoleAdmin
	}
	return RoleStandard
}

// UserIDFromToken extracts the user identifier claim, or "" when absent.
func UserIDFromToken(token string) string {
	claims := decodeClaims(token)
	if claims == nil {
		return ""
	}
	id, _ := claims["id"].(string)
	return id
}

func decodeClaims(token string) jwt.MapClaims {
	if token == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}
