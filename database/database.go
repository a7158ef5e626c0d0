package database

import (
	"fmt"
	"time"

	"kitchenbook-go-server/models"
	"kitchenbook-go-server/utils"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
)

var Mysql *gorm.DB

func InitDatabasePool() {
	config := utils.EnvConfig.Database
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		config.User, config.Password, config.Host, config.Port, config.Db, config.Params,
	)

	db, err := gorm.Open(config.Client, dsn)
	if err != nil {
		panic(fmt.Errorf("database connect fail: %s", err.Error()))
	}

	db.DB().SetMaxIdleConns(int(config.MaxIdle))
	db.DB().SetMaxOpenConns(int(config.MaxOpenConn))
	if lifeTime, err := time.ParseDuration(config.MaxLifeTime); err == nil {
		db.DB().SetConnMaxLifetime(lifeTime)
	}
	db.LogMode(config.LogEnable == 1)

	if err := Migrate(db); err != nil {
		panic(fmt.Errorf("database migrate fail: %s", err.Error()))
	}

	Mysql = db
}

// Migrate creates the schema. Unique indexes come from the model tags,
// foreign keys only on mysql. recipes.category_id and the comment
// references carry no constraint on purpose: deleting a recipe category
// or a recipe leaves the reference dangling instead of cascading.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.RecipeCategory{},
		&models.IngredientCategory{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Comment{},
		&models.User{},
		&models.AuthToken{},
		&models.ActivityLog{},
	).Error; err != nil {
		return err
	}

	if db.Dialect().GetName() == "mysql" {
		if err := db.Model(&models.Ingredient{}).AddForeignKey("category_id", "ingredient_categories(id)", "CASCADE", "CASCADE").Error; err != nil {
			return err
		}
		if err := db.Model(&models.RecipeIngredient{}).AddForeignKey("recipe_id", "recipes(id)", "CASCADE", "CASCADE").Error; err != nil {
			return err
		}
		if err := db.Model(&models.RecipeIngredient{}).AddForeignKey("ingredient_id", "ingredients(id)", "CASCADE", "CASCADE").Error; err != nil {
			return err
		}
		if err := db.Model(&models.Recipe{}).AddForeignKey("user_id", "users(id)", "CASCADE", "CASCADE").Error; err != nil {
			return err
		}
	}

	return nil
}
