package comment

import (
	"encoding/json"
	"errors"
	"testing"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/models"
	"kitchenbook-go-server/services/events"
	"kitchenbook-go-server/structs"
	"kitchenbook-go-server/utils"

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

func captureEvents(t *testing.T) *[]events.Event {
	var cfg structs.EnviromentModel
	cfg.RabbitMQ.Enable = 1
	cfg.RabbitMQ.Queue = "test-events"
	utils.EnvConfig = &cfg

	captured := &[]events.Event{}
	oldSend := events.Send
	events.Send = func(queue string, body []byte) error {
		var event events.Event
		if err := json.Unmarshal(body, &event); err != nil {
			return err
		}
		*captured = append(*captured, event)
		return nil
	}
	t.Cleanup(func() {
		events.Send = oldSend
		utils.EnvConfig = nil
	})
	return captured
}

func seedRecipe(t *testing.T) models.Recipe {
	recipeEntity := models.Recipe{Name: "Carrot Soup", Description: "x", UserID: 1}
	require.NoError(t, database.Mysql.Create(&recipeEntity).Error)
	return recipeEntity
}

func TestCreateComment(t *testing.T) {
	defer setupTestDB(t)()
	recipeEntity := seedRecipe(t)

	var commentService CommentService
	commentEntity, err := commentService.Create(structs.CommentPayload{
		Text: "tasty", RecipeID: recipeEntity.ID,
	}, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), commentEntity.UserID)
	assert.False(t, commentEntity.PublishedOn.IsZero())
}

func TestCreateCommentUnknownRecipe(t *testing.T) {
	defer setupTestDB(t)()

	var commentService CommentService
	_, err := commentService.Create(structs.CommentPayload{Text: "tasty", RecipeID: 4242}, 7)
	require.Error(t, err)
	assert.Equal(t, enums.ErrorNotFound, appErrKind(t, err))
}

func TestCreateCommentEmptyText(t *testing.T) {
	defer setupTestDB(t)()
	recipeEntity := seedRecipe(t)

	var commentService CommentService
	_, err := commentService.Create(structs.CommentPayload{Text: " ", RecipeID: recipeEntity.ID}, 7)
	require.Error(t, err)
	assert.Equal(t, enums.ErrorValidationFailed, appErrKind(t, err))
}

func TestUpdateAndDeleteIgnoreOwnership(t *testing.T) {
	defer setupTestDB(t)()
	recipeEntity := seedRecipe(t)

	var commentService CommentService
	commentEntity, err := commentService.Create(structs.CommentPayload{
		Text: "tasty", RecipeID: recipeEntity.ID,
	}, 7)
	require.NoError(t, err)

	// a different authenticated user may edit and delete it
	updated, err := commentService.Update(commentEntity.ID, structs.CommentPayload{Text: "very tasty"}, 8)
	require.NoError(t, err)
	assert.Equal(t, "very tasty", updated.Text)
	assert.Equal(t, int64(7), updated.UserID)

	require.NoError(t, commentService.Delete(commentEntity.ID, 8))
	_, err = commentService.Get(commentEntity.ID)
	require.Error(t, err)
	assert.Equal(t, enums.ErrorNotFound, appErrKind(t, err))
}

func TestCreateAndDeletePublishEvents(t *testing.T) {
	defer setupTestDB(t)()
	captured := captureEvents(t)
	recipeEntity := seedRecipe(t)

	var commentService CommentService
	commentEntity, err := commentService.Create(structs.CommentPayload{
		Text: "tasty", RecipeID: recipeEntity.ID,
	}, 7)
	require.NoError(t, err)
	require.NoError(t, commentService.Delete(commentEntity.ID, 8))

	require.Len(t, *captured, 2)
	assert.Equal(t, events.Event{Type: enums.ActionCreate, Entity: enums.EntityComment, ID: commentEntity.ID, ActorID: 7}, (*captured)[0])
	assert.Equal(t, events.Event{Type: enums.ActionDelete, Entity: enums.EntityComment, ID: commentEntity.ID, ActorID: 8}, (*captured)[1])
}

func TestListByRecipe(t *testing.T) {
	defer setupTestDB(t)()
	recipeEntity := seedRecipe(t)

	var commentService CommentService
	for _, text := range []string{"one", "two"} {
		_, err := commentService.Create(structs.CommentPayload{Text: text, RecipeID: recipeEntity.ID}, 7)
		require.NoError(t, err)
	}

	commentEntities, err := commentService.ListByRecipe(recipeEntity.ID)
	require.NoError(t, err)
	require.Len(t, commentEntities, 2)
	assert.Equal(t, "one", commentEntities[0].Text)
}
