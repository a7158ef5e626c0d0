package auth

import (
	"errors"
	"testing"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/structs"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) func() {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.Mysql = db
	return func() { db.Close() }
}

func appErrKind(t *testing.T, err error) string {
	var appErr *structs.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Kind
}

func registration() structs.RegisterPayload {
	return structs.RegisterPayload{
		Username:  "cook",
		FirstName: "Test",
		LastName:  "Cook",
		Email:     "cook@example.com",
		Password1: "super-secret",
		Password2: "super-secret",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	defer setupTestDB(t)()

	var authService AuthService
	userEntity, err := authService.Register(registration())
	require.NoError(t, err)
	assert.NotEqual(t, "super-secret", userEntity.Password)
	assert.False(t, userEntity.IsSuperuser)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	defer setupTestDB(t)()

	var authService AuthService
	_, err := authService.Register(registration())
	require.NoError(t, err)
	_, err = authService.Register(registration())
	require.Error(t, err)
	assert.Equal(t, enums.ErrorIntegrityConflict, appErrKind(t, err))
}

func TestRegisterUnrelatedDatabaseErrorIsNotAConflict(t *testing.T) {
	teardown := setupTestDB(t)
	teardown() // closed pool: the insert fails for a non-unique reason

	var authService AuthService
	_, err := authService.Register(registration())
	require.Error(t, err)
	var appErr *structs.AppError
	assert.False(t, errors.As(err, &appErr), "database failure must surface raw, got %v", err)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	defer setupTestDB(t)()

	payload := registration()
	payload.Password2 = "something-else"
	var authService AuthService
	_, err := authService.Register(payload)
	require.Error(t, err)
	assert.Equal(t, enums.ErrorValidationFailed, appErrKind(t, err))
}

func TestObtainTokenIsIdempotent(t *testing.T) {
	defer setupTestDB(t)()

	var authService AuthService
	_, err := authService.Register(registration())
	require.NoError(t, err)

	first, err := authService.ObtainToken(structs.TokenAuthPayload{Username: "cook", Password: "super-secret"})
	require.NoError(t, err)
	second, err := authService.ObtainToken(structs.TokenAuthPayload{Username: "cook", Password: "super-secret"})
	require.NoError(t, err)
	assert.Equal(t, first.Key, second.Key)
	assert.NotEmpty(t, first.Key)
}

func TestObtainTokenBadCredentials(t *testing.T) {
	defer setupTestDB(t)()

	var authService AuthService
	_, err := authService.Register(registration())
	require.NoError(t, err)

	_, err = authService.ObtainToken(structs.TokenAuthPayload{Username: "cook", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, enums.ErrorValidationFailed, appErrKind(t, err))

	_, err = authService.ObtainToken(structs.TokenAuthPayload{Username: "nobody", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, enums.ErrorValidationFailed, appErrKind(t, err))
}

func TestAuthenticateResolvesRequester(t *testing.T) {
	defer setupTestDB(t)()

	var authService AuthService
	userEntity, err := authService.Register(registration())
	require.NoError(t, err)

	token, err := authService.GetOrCreateToken(userEntity.ID)
	require.NoError(t, err)

	requester, err := authService.Authenticate(token.Key)
	require.NoError(t, err)
	assert.True(t, requester.IsAuthenticated)
	assert.False(t, requester.IsSuperuser)
	assert.Equal(t, userEntity.ID, requester.ID)

	_, err = authService.Authenticate("bogus-key")
	require.Error(t, err)
	assert.Equal(t, enums.ErrorAuthenticationRequired, appErrKind(t, err))
}
