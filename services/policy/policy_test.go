package policy

import (
	"testing"

	"kitchenbook-go-server/enums"

	"github.com/stretchr/testify/assert"
)

var (
	anonymous = Requester{}
	member    = Requester{ID: 7, IsAuthenticated: true}
	superuser = Requester{ID: 1, IsAuthenticated: true, IsSuperuser: true}
)

var allResources = []string{
	enums.ResourceRecipes,
	enums.ResourceIngredients,
	enums.ResourceRecipeCategories,
	enums.ResourceIngredientCategories,
	enums.ResourceComments,
}

var mutatingMethods = []string{"POST", "PUT", "PATCH", "DELETE"}
var safeMethodList = []string{"GET", "HEAD", "OPTIONS"}

func TestAnonymousAlwaysDenied(t *testing.T) {
	for _, resource := range allResources {
		for _, method := range append(mutatingMethods, safeMethodList...) {
			assert.False(t, Allow(resource, method, anonymous), "%s %s", method, resource)
		}
	}
}

func TestPrivateResourcesRequireSuperuserForMutation(t *testing.T) {
	private := []string{
		enums.ResourceRecipeCategories,
		enums.ResourceIngredientCategories,
		enums.ResourceIngredients,
	}
	for _, resource := range private {
		for _, method := range mutatingMethods {
			assert.False(t, Allow(resource, method, member), "%s %s", method, resource)
			assert.True(t, Allow(resource, method, superuser), "%s %s", method, resource)
		}
		for _, method := range safeMethodList {
			assert.True(t, Allow(resource, method, member), "%s %s", method, resource)
		}
	}
}

func TestPublicResourcesOnlyRequireAuthentication(t *testing.T) {
	public := []string{enums.ResourceRecipes, enums.ResourceComments}
	for _, resource := range public {
		for _, method := range append(mutatingMethods, safeMethodList...) {
			assert.True(t, Allow(resource, method, member), "%s %s", method, resource)
		}
	}
}
