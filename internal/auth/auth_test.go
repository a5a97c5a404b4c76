package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"LocalFormat", "081234567890", "6281234567890", false},
		{"InternationalPlus", "+62 812-3456-7890", "6281234567890", false},
		{"AlreadyCanonical", "6281234567890", "6281234567890", false},
		{"WithSpaces", "0812 3456 7890", "6281234567890", false},
		{"TooShort", "0812", "", true},
		{"Empty", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestServiceVerify(t *testing.T) {
	svc, err := NewService(nil, "test-secret", []string{"081111111111"})
	require.NoError(t, err)

	t.Run("ValidToken", func(t *testing.T) {
		signed := signToken(t, "test-secret", jwt.MapClaims{
			"phone": "6281234567890",
			"role":  RoleUser,
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		user, err := svc.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "6281234567890", user.Phone)
		assert.Equal(t, RoleUser, user.Role)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		signed := signToken(t, "other-secret", jwt.MapClaims{
			"phone": "6281234567890",
			"role":  RoleUser,
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		_, err := svc.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		signed := signToken(t, "test-secret", jwt.MapClaims{
			"phone": "6281234567890",
			"role":  RoleUser,
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})

		_, err := svc.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MissingClaims", func(t *testing.T) {
		signed := signToken(t, "test-secret", jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := svc.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewServiceRejectsBadInput(t *testing.T) {
	_, err := NewService(nil, "", nil)
	assert.Error(t, err)

	_, err = NewService(nil, "secret", []string{"abc"})
	assert.Error(t, err)
}
