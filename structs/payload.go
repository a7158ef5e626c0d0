package structs

type RecipeIngredientPayload struct {
	IngredientID int64  `json:"ingredient_id" form:"ingredient_id"`
	Quantity     *int64 `json:"quantity" form:"quantity"`
}

type RecipePayload struct {
	Name        string                    `json:"name" form:"name"`
	Description string                    `json:"description" form:"description"`
	Category    int64                     `json:"category" form:"category"`
	Ingredients []RecipeIngredientPayload `json:"ingredients" form:"ingredients"`
}

type IngredientPayload struct {
	Name     string `json:"name" form:"name"`
	Category int64  `json:"category" form:"category"`
	Price    int64  `json:"price" form:"price"`
}

type CategoryPayload struct {
	Name string `json:"name" form:"name"`
}

type CommentPayload struct {
	Text     string `json:"text" form:"text"`
	RecipeID int64  `json:"recipe_id" form:"recipe_id"`
}

type RegisterPayload struct {
	Username  string `json:"username" form:"username"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Email     string `json:"email" form:"email"`
	Password1 string `json:"password1" form:"password1"`
	Password2 string `json:"password2" form:"password2"`
}

type TokenAuthPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}
