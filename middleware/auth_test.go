package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/models"
	"kitchenbook-go-server/router"
	"kitchenbook-go-server/services/auth"
	"kitchenbook-go-server/structs"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	engine         *gin.Engine
	memberToken    string
	superuserToken string
}

func setup(t *testing.T) (*fixture, func()) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.Mysql = db

	member := models.User{Username: "member", Password: "x"}
	require.NoError(t, db.Create(&member).Error)
	superuser := models.User{Username: "admin", Password: "x", IsSuperuser: true}
	require.NoError(t, db.Create(&superuser).Error)

	var authService auth.AuthService
	memberToken, err := authService.GetOrCreateToken(member.ID)
	require.NoError(t, err)
	superuserToken, err := authService.GetOrCreateToken(superuser.ID)
	require.NoError(t, err)

	f := &fixture{
		engine:         router.Router(),
		memberToken:    memberToken.Key,
		superuserToken: superuserToken.Key,
	}
	return f, func() { db.Close() }
}

func (f *fixture) do(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	recorder := httptest.NewRecorder()
	f.engine.ServeHTTP(recorder, req)
	return recorder
}

func TestAnonymousGets401(t *testing.T) {
	f, teardown := setup(t)
	defer teardown()

	for _, path := range []string{"/api/recipes", "/api/ingredients", "/api/recipe-categories", "/api/comments", "/api/profile/"} {
		assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, path, "", nil).Code, path)
	}
}

func TestMemberCannotMutatePrivateResources(t *testing.T) {
	f, teardown := setup(t)
	defer teardown()

	res := f.do(http.MethodPost, "/api/ingredient-categories", f.memberToken, structs.CategoryPayload{Name: "Veg"})
	assert.Equal(t, http.StatusForbidden, res.Code)

	// reading private resources only needs authentication
	res = f.do(http.MethodGet, "/api/ingredient-categories", f.memberToken, nil)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestSuperuserMutatesPrivateResources(t *testing.T) {
	f, teardown := setup(t)
	defer teardown()

	res := f.do(http.MethodPost, "/api/ingredient-categories", f.superuserToken, structs.CategoryPayload{Name: "Veg"})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	res = f.do(http.MethodPost, "/api/ingredients", f.superuserToken, structs.IngredientPayload{Name: "Carrot", Category: 1, Price: 10})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
}

func TestMemberMutatesPublicResources(t *testing.T) {
	f, teardown := setup(t)
	defer teardown()

	require.Equal(t, http.StatusCreated,
		f.do(http.MethodPost, "/api/ingredient-categories", f.superuserToken, structs.CategoryPayload{Name: "Veg"}).Code)
	require.Equal(t, http.StatusCreated,
		f.do(http.MethodPost, "/api/recipe-categories", f.superuserToken, structs.CategoryPayload{Name: "Soups"}).Code)
	require.Equal(t, http.StatusCreated,
		f.do(http.MethodPost, "/api/ingredients", f.superuserToken, structs.IngredientPayload{Name: "Carrot", Category: 1, Price: 10}).Code)

	two := int64(2)
	res := f.do(http.MethodPost, "/api/recipes", f.memberToken, structs.RecipePayload{
		Name:        "Carrot Soup",
		Description: "boil and blend",
		Category:    1,
		Ingredients: []structs.RecipeIngredientPayload{{IngredientID: 1, Quantity: &two}},
	})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	res = f.do(http.MethodPost, "/api/comments", f.memberToken, structs.CommentPayload{Text: "tasty", RecipeID: 1})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	// unknown category on listing is a hard 404, not an empty list
	res = f.do(http.MethodGet, "/api/recipes?category_id=4242", f.memberToken, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
