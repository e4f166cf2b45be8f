package services

import (
	"testing"
	"time"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"
	"github.com/SARVESHYOGI/store-rating-system/repository"
	"github.com/SARVESHYOGI/store-rating-system/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), testSecret, 24*time.Hour)
}

func TestRegisterForcesUserRole(t *testing.T) {
	db := openTestDB(t)
	svc := newAuthService(db)

	user, token, err := svc.Register("Alice Example", "Alice@Example.COM", "Valid#Pass1", "1 High St")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, token)

	claims, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	svc := newAuthService(db)

	_, _, err := svc.Register("Alice Example", "alice@example.com", "Valid#Pass1", "")
	require.NoError(t, err)

	_, _, err = svc.Register("Other Alice", "alice@example.com", "Valid#Pass1", "")
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestPasswordPolicy(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"Valid#Pass1", true},
		{"short#A", false},               // under 8
		{"ThisOneIsWayTooLong#1", false}, // over 16
		{"nopper#case1", false},          // no uppercase
		{"NoSpecial123", false},          // no special char
	}
	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if tt.ok {
			assert.NoError(t, err, tt.password)
		} else {
			require.Error(t, err, tt.password)
			assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		}
	}
}

func TestLogin(t *testing.T) {
	db := openTestDB(t)
	svc := newAuthService(db)

	_, _, err := svc.Register("Alice Example", "alice@example.com", "Valid#Pass1", "")
	require.NoError(t, err)

	token, user, err := svc.Login("alice@example.com", "Valid#Pass1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alice Example", user.Name)

	// same error for wrong password and unknown email
	_, _, err = svc.Login("alice@example.com", "Wrong#Pass1")
	require.Error(t, err)
	assert.Equal(t, apperr.Authentication, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "invalid credentials")

	_, _, err = svc.Login("nobody@example.com", "Valid#Pass1")
	require.Error(t, err)
	assert.Equal(t, apperr.Authentication, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestChangePassword(t *testing.T) {
	db := openTestDB(t)
	svc := newAuthService(db)

	user, oldToken, err := svc.Register("Alice Example", "alice@example.com", "Valid#Pass1", "")
	require.NoError(t, err)

	err = svc.ChangePassword(user.ID, "Wrong#Pass1", "Fresh#Pass2")
	require.Error(t, err)
	assert.Equal(t, apperr.Authentication, apperr.KindOf(err))

	err = svc.ChangePassword(user.ID, "Valid#Pass1", "weak")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	require.NoError(t, svc.ChangePassword(user.ID, "Valid#Pass1", "Fresh#Pass2"))

	_, _, err = svc.Login("alice@example.com", "Valid#Pass1")
	require.Error(t, err)
	_, _, err = svc.Login("alice@example.com", "Fresh#Pass2")
	require.NoError(t, err)

	// tokens issued before the change stay valid until expiry
	claims, err := utils.ParseToken(oldToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestParseTokenRejectsBadSignature(t *testing.T) {
	db := openTestDB(t)
	svc := newAuthService(db)

	_, token, err := svc.Register("Alice Example", "alice@example.com", "Valid#Pass1", "")
	require.NoError(t, err)

	_, err = utils.ParseToken(token, "other-secret")
	assert.Error(t, err)

	_, err = utils.ParseToken("not-a-token", testSecret)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "Alice", "alice@example.com", entity.RoleUser)

	token, err := utils.GenerateToken(user, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseToken(token, testSecret)
	assert.Error(t, err)
}
