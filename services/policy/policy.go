package policy

import "kitchenbook-go-server/enums"

// Requester is what the rest of the server knows about the caller.
type Requester struct {
	ID              int64
	IsAuthenticated bool
	IsSuperuser     bool
}

// privateResources may be read by any authenticated user but mutated
// only by superusers. Everything else is public: authentication is the
// only requirement, ownership is not checked.
var privateResources = map[string]bool{
	enums.ResourceRecipeCategories:     true,
	enums.ResourceIngredientCategories: true,
	enums.ResourceIngredients:          true,
}

var safeMethods = map[string]bool{
	"GET":     true,
	"HEAD":    true,
	"OPTIONS": true,
}

// Allow decides whether the requester may run the given method against
// the given resource. Pure decision, no side effects.
func Allow(resource, method string, requester Requester) bool {
	if !requester.IsAuthenticated {
		return false
	}
	if privateResources[resource] && !safeMethods[method] {
		return requester.IsSuperuser
	}
	return true
}
