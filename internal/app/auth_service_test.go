package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func newAuthFixture() (*AuthService, *memUserStore, *memFolderStore) {
	users := newMemUserStore()
	folders := newMemFolderStore()
	svc := NewAuthService(users, folders, testJWTSecret, time.Hour)
	return svc, users, folders
}

func TestSignupThenLoginSameUser(t *testing.T) {
	svc, _, _ := newAuthFixture()

	signedUp, err := svc.Signup(SignupInput{Name: "Ada", Email: "ada@x.com", Password: "pw123"})
	require.NoError(t, err)
	require.NotEmpty(t, signedUp.Token)
	require.NotZero(t, signedUp.User.ID)

	loggedIn, err := svc.Login(LoginInput{Email: "ada@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, loggedIn.User.ID)
}

func TestSignupSeedsDefaultFolder(t *testing.T) {
	svc, _, folders := newAuthFixture()

	result, err := svc.Signup(SignupInput{Name: "Ada", Email: "ada@x.com", Password: "pw123"})
	require.NoError(t, err)

	seeded, err := folders.ListByUserID(result.User.ID)
	require.NoError(t, err)
	require.Len(t, seeded, 1)
	assert.Equal(t, "Default Folder", seeded[0].Name)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Signup(SignupInput{Name: "Ada", Email: "ada@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Signup(SignupInput{Name: "Other", Email: "ADA@X.COM", Password: "different"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestSignupNeverStoresPlaintextPassword(t *testing.T) {
	svc, users, _ := newAuthFixture()

	result, err := svc.Signup(SignupInput{Name: "Ada", Email: "ada@x.com", Password: "pw123"})
	require.NoError(t, err)

	stored, err := users.GetByID(result.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, users, _ := newAuthFixture()

	_, err := svc.Signup(SignupInput{Name: "Ada", Email: "ada@x.com", Password: "pw123"})
	require.NoError(t, err)
	before := users.count()

	_, err = svc.Login(LoginInput{Email: "ada@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Login(LoginInput{Email: "nobody@x.com", Password: "pw123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	assert.Equal(t, before, users.count(), "failed logins must not mutate state")
}

func TestUpdateProfileMergesFields(t *testing.T) {
	svc, _, _ := newAuthFixture()

	result, err := svc.Signup(SignupInput{Name: "Ada", Email: "ada@x.com", Password: "pw123"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(result.User.ID, UpdateProfileInput{Name: "Ada Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "ada@x.com", updated.Email, "unset fields keep their value")

	updated, err = svc.UpdateProfile(result.User.ID, UpdateProfileInput{Email: "ada@newdomain.com"})
	require.NoError(t, err)
	assert.Equal(t, "ada@newdomain.com", updated.Email)
	assert.Equal(t, "Ada Lovelace", updated.Name)
}

func TestUpdateProfileEmailCollision(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Signup(SignupInput{Name: "Ada", Email: "ada@x.com", Password: "pw123"})
	require.NoError(t, err)
	second, err := svc.Signup(SignupInput{Name: "Grace", Email: "grace@x.com", Password: "pw456"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(second.User.ID, UpdateProfileInput{Email: "ada@x.com"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUpdateProfileRequiresExistingUser(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.UpdateProfile(0, UpdateProfileInput{Name: "nope"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateProfile(42, UpdateProfileInput{Name: "nope"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
