package auth

import (
	"fmt"
	"strings"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/models"
	"kitchenbook-go-server/services/activity"
	"kitchenbook-go-server/services/policy"
	"kitchenbook-go-server/structs"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct{}

// Register creates a user account from the registration form payload.
func (s *AuthService) Register(payload structs.RegisterPayload) (*models.User, error) {
	if strings.TrimSpace(payload.Username) == "" ||
		strings.TrimSpace(payload.FirstName) == "" ||
		strings.TrimSpace(payload.LastName) == "" ||
		strings.TrimSpace(payload.Email) == "" {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "username, first_name, last_name and email are required")
	}
	if payload.Password1 == "" || payload.Password1 != payload.Password2 {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "passwords are empty or do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userEntity := models.User{
		Username:  payload.Username,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  string(hash),
	}
	if createErr := database.Mysql.Create(&userEntity).Error; createErr != nil {
		// conflict only when the username unique index is what tripped;
		// any other database failure surfaces as-is
		var holder models.User
		if err := database.Mysql.Where(models.User{Username: payload.Username}).First(&holder).Error; err == nil {
			return nil, structs.NewAppError(enums.ErrorIntegrityConflict, fmt.Sprintf("username %s is taken", payload.Username))
		}
		return nil, createErr
	}

	activity.Record(userEntity.ID, enums.ActionCreate, enums.EntityUser, userEntity.ID)
	return &userEntity, nil
}

// ObtainToken exchanges credentials for the user's API token.
func (s *AuthService) ObtainToken(payload structs.TokenAuthPayload) (*models.AuthToken, error) {
	var userEntity models.User
	if err := database.Mysql.Where(models.User{Username: payload.Username}).First(&userEntity).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewAppError(enums.ErrorValidationFailed, "unable to log in with provided credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userEntity.Password), []byte(payload.Password)); err != nil {
		return nil, structs.NewAppError(enums.ErrorValidationFailed, "unable to log in with provided credentials")
	}
	return s.GetOrCreateToken(userEntity.ID)
}

// GetOrCreateToken is idempotent: two concurrent first logins resolve
// to one token through the unique index on user_id.
func (s *AuthService) GetOrCreateToken(userID int64) (*models.AuthToken, error) {
	var token models.AuthToken
	err := database.Mysql.Where(models.AuthToken{UserID: userID}).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	token = models.AuthToken{
		Key:    strings.ReplaceAll(uuid.New().String(), "-", ""),
		UserID: userID,
	}
	if createErr := database.Mysql.Create(&token).Error; createErr != nil {
		// lost the race, the winner's row is there now
		var winner models.AuthToken
		if err := database.Mysql.Where(models.AuthToken{UserID: userID}).First(&winner).Error; err == nil {
			return &winner, nil
		}
		return nil, createErr
	}
	return &token, nil
}

// Authenticate resolves a token key to a requester identity.
func (s *AuthService) Authenticate(key string) (policy.Requester, error) {
	var token models.AuthToken
	if err := database.Mysql.Where(models.AuthToken{Key: key}).First(&token).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return policy.Requester{}, structs.NewAppError(enums.ErrorAuthenticationRequired, "invalid token")
		}
		return policy.Requester{}, err
	}
	var userEntity models.User
	if err := database.Mysql.First(&userEntity, token.UserID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return policy.Requester{}, structs.NewAppError(enums.ErrorAuthenticationRequired, "invalid token")
		}
		return policy.Requester{}, err
	}
	return policy.Requester{
		ID:              userEntity.ID,
		IsAuthenticated: true,
		IsSuperuser:     userEntity.IsSuperuser,
	}, nil
}
