package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestRoleFromToken(t *testing.T) {
	admin := signedToken(t, jwt.MapClaims{"id": "u1", "role": "admin"})
	if got := RoleFromToken(admin); got != RoleAdmin {
		t.Fatalf("admin role = %s", got)
	}

	standard := signedToken(t, jwt.MapClaims{"id": "u2", "role": "user"})
	if got := RoleFromToken(standard); got != RoleStandard {
		t.Fatalf("standard role = %s", got)
	}

	noRoleClaim := signedToken(t, jwt.MapClaims{"id": "u3"})
	if got := RoleFromToken(noRoleClaim); got != RoleStandard {
		t.Fatalf("claimless role = %s", got)
	}
}

func TestRoleFromTokenDegradesSilently(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		if got := RoleFromToken(token); got != RoleNone {
			t.Fatalf("RoleFromToken(%q) = %s, want none", token, got)
		}
	}
}

func TestUserIDFromToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"id": "user-42", "role": "user"})
	if got := UserIDFromToken(token); got != "user-42" {
		t.Fatalf("user id = %q", got)
	}
	if got := UserIDFromToken("garbage"); got != "" {
		t.Fatalf("garbage user id = %q", got)
	}
}
