package enums

const (
	ResourceRecipes              = "recipes"
	ResourceIngredients          = "ingredients"
	ResourceRecipeCategories     = "recipe-categories"
	ResourceIngredientCategories = "ingredient-categories"
	ResourceComments             = "comments"

	ErrorAuthenticationRequired = "authentication_required"
	ErrorPermissionDenied       = "permission_denied"
	ErrorNotFound               = "not_found"
	ErrorValidationFailed       = "validation_failed"
	ErrorIntegrityConflict      = "integrity_conflict"
	ErrorInternal               = "internal_error"

	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionInit   = "init"

	EntityRecipe             = "recipe"
	EntityIngredient         = "ingredient"
	EntityRecipeCategory     = "recipe_category"
	EntityIngredientCategory = "ingredient_category"
	EntityComment            = "comment"
	EntityUser               = "user"
)
