package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"mingle/internal/database"
	"mingle/internal/graph"
	"mingle/internal/handlers"
	"mingle/internal/models"
	"mingle/internal/repositories"
	"mingle/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp wires a full Fiber app over a private in-memory SQLite database.
// Each test gets its own database name so tests stay independent.
func setupApp(t *testing.T, dbName string) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repositories.NewGORMUserRepository(db)
	profileRepo := repositories.NewGORMProfileRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)
	memberTypeRepo := repositories.NewGORMMemberTypeRepository(db)
	subRepo := repositories.NewGORMSubscriptionRepository(db)

	integrity := services.NewIntegrityChecker(userRepo, profileRepo, memberTypeRepo)
	userService := services.NewUserService(userRepo, profileRepo, postRepo, subRepo, nil)
	subService := services.NewSubscriptionService(userRepo, subRepo, nil)
	profileService := services.NewProfileService(profileRepo, integrity)
	postService := services.NewPostService(postRepo, integrity)
	memberTypeService := services.NewMemberTypeService(memberTypeRepo)
	require.NoError(t, memberTypeService.SeedMemberTypes())

	resolver := graph.NewResolver(userService, profileService, postService, memberTypeService, subService)
	schema, err := graph.NewSchema(resolver)
	require.NoError(t, err)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewUserHandler(userService, subService).RegisterRoutes(apiV1)
	handlers.NewProfileHandler(profileService).RegisterRoutes(apiV1)
	handlers.NewPostHandler(postService).RegisterRoutes(apiV1)
	handlers.NewMemberTypeHandler(memberTypeService).RegisterRoutes(apiV1)
	handlers.NewGraphQLHandler(schema).RegisterRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createUser(t *testing.T, app *fiber.App, firstName, email string) models.User {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/v1/users", fiber.Map{
		"firstName": firstName,
		"lastName":  "Tester",
		"email":     email,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user models.User
	decodeBody(t, resp, &user)
	require.NotEmpty(t, user.ID)
	return user
}

func TestSubscribeLifecycle(t *testing.T) {
	app := setupApp(t, "subscribe_lifecycle")

	u1 := createUser(t, app, "Alice", "alice@example.com")
	u2 := createUser(t, app, "Bob", "bob@example.com")

	// u1 subscribes to u2: u2's follower list gains u1.
	resp := doRequest(t, app, http.MethodPost, "/api/v1/users/"+u1.ID+"/subscribeTo", fiber.Map{"userId": u2.ID})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var target models.User
	decodeBody(t, resp, &target)
	assert.Equal(t, u2.ID, target.ID)
	assert.Equal(t, []string{u1.ID}, target.SubscribedToUserIDs)

	// Subscribing again changes nothing.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/users/"+u1.ID+"/subscribeTo", fiber.Map{"userId": u2.ID})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &target)
	assert.Equal(t, []string{u1.ID}, target.SubscribedToUserIDs)

	// Unsubscribe empties the list.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/users/"+u1.ID+"/unsubscribeFrom", fiber.Map{"userId": u2.ID})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &target)
	assert.Empty(t, target.SubscribedToUserIDs)

	// A second unsubscribe is rejected.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/users/"+u1.ID+"/unsubscribeFrom", fiber.Map{"userId": u2.ID})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Subscribing to a missing user is a 404.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/users/"+u1.ID+"/subscribeTo", fiber.Map{"userId": "ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteUserCascades(t *testing.T) {
	app := setupApp(t, "delete_cascade")

	u1 := createUser(t, app, "Alice", "alice@example.com")
	u2 := createUser(t, app, "Bob", "bob@example.com")

	// u1 owns a profile and a post, and follows u2.
	resp := doRequest(t, app, http.MethodPost, "/api/v1/profiles", fiber.Map{
		"avatar": "a.png", "sex": "female", "birthday": "1990-01-01",
		"country": "NL", "street": "Main", "city": "Amsterdam",
		"memberTypeId": models.MemberTypeBasic, "userId": u1.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var profile models.Profile
	decodeBody(t, resp, &profile)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/posts", fiber.Map{
		"title": "t", "content": "c", "userId": u1.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/users/"+u1.ID+"/subscribeTo", fiber.Map{"userId": u2.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Delete u1.
	resp = doRequest(t, app, http.MethodDelete, "/api/v1/users/"+u1.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The user, their profile and their posts are gone.
	resp = doRequest(t, app, http.MethodGet, "/api/v1/users/"+u1.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = doRequest(t, app, http.MethodGet, "/api/v1/profiles/"+profile.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/posts", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var posts []models.Post
	decodeBody(t, resp, &posts)
	assert.Empty(t, posts)

	// u2's follower list no longer mentions u1.
	resp = doRequest(t, app, http.MethodGet, "/api/v1/users/"+u2.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var u2After models.User
	decodeBody(t, resp, &u2After)
	assert.NotContains(t, u2After.SubscribedToUserIDs, u1.ID)

	// Deleting again is a 404.
	resp = doRequest(t, app, http.MethodDelete, "/api/v1/users/"+u1.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProfileIntegrityRules(t *testing.T) {
	app := setupApp(t, "profile_integrity")

	u1 := createUser(t, app, "Alice", "alice@example.com")

	payload := fiber.Map{
		"avatar": "a.png", "sex": "female", "birthday": "1990-01-01",
		"country": "NL", "street": "Main", "city": "Amsterdam",
		"memberTypeId": models.MemberTypeBasic, "userId": u1.ID,
	}
	resp := doRequest(t, app, http.MethodPost, "/api/v1/profiles", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var first models.Profile
	decodeBody(t, resp, &first)

	// A second profile for the same user is a conflict, and the original
	// stays intact.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/profiles", payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/profiles/"+first.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var still models.Profile
	decodeBody(t, resp, &still)
	assert.Equal(t, first.ID, still.ID)
	assert.Equal(t, "Amsterdam", still.City)

	// Unknown owner and unknown member type are reference failures.
	bad := fiber.Map{
		"avatar": "a.png", "sex": "male", "birthday": "1990-01-01",
		"country": "NL", "street": "Main", "city": "Amsterdam",
		"memberTypeId": models.MemberTypeBasic, "userId": "ghost",
	}
	resp = doRequest(t, app, http.MethodPost, "/api/v1/profiles", bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	u2 := createUser(t, app, "Bob", "bob@example.com")
	bad["userId"] = u2.ID
	bad["memberTypeId"] = "platinum"
	resp = doRequest(t, app, http.MethodPost, "/api/v1/profiles", bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostIntegrityRules(t *testing.T) {
	app := setupApp(t, "post_integrity")

	// Creating a post for a missing owner fails before any write.
	resp := doRequest(t, app, http.MethodPost, "/api/v1/posts", fiber.Map{
		"title": "t", "content": "c", "userId": "ghost",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/posts", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var posts []models.Post
	decodeBody(t, resp, &posts)
	assert.Empty(t, posts)
}

func TestMemberTypeRoutes(t *testing.T) {
	app := setupApp(t, "member_types")

	resp := doRequest(t, app, http.MethodGet, "/api/v1/member-types", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var memberTypes []models.MemberType
	decodeBody(t, resp, &memberTypes)
	assert.Len(t, memberTypes, 2)

	resp = doRequest(t, app, http.MethodPatch, "/api/v1/member-types/"+models.MemberTypeBusiness, fiber.Map{
		"discount": 15,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var business models.MemberType
	decodeBody(t, resp, &business)
	assert.Equal(t, 15, business.Discount)
	assert.Equal(t, 100, business.MonthPostsLimit)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/member-types/platinum", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGraphQLEndpoint(t *testing.T) {
	app := setupApp(t, "graphql_endpoint")

	u1 := createUser(t, app, "Alice", "alice@example.com")
	u2 := createUser(t, app, "Bob", "bob@example.com")

	resp := doRequest(t, app, http.MethodPost, "/graphql", fiber.Map{
		"query": `mutation($f: ID!, $t: ID!) { subscribeTo(followerId: $f, targetId: $t) { id subscribedToUserIds } }`,
		"variables": fiber.Map{
			"f": u1.ID,
			"t": u2.ID,
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data struct {
			SubscribeTo struct {
				ID                  string   `json:"id"`
				SubscribedToUserIDs []string `json:"subscribedToUserIds"`
			} `json:"subscribeTo"`
		} `json:"data"`
		Errors []interface{} `json:"errors"`
	}
	decodeBody(t, resp, &result)
	assert.Empty(t, result.Errors)
	assert.Equal(t, u2.ID, result.Data.SubscribeTo.ID)
	assert.Equal(t, []string{u1.ID}, result.Data.SubscribeTo.SubscribedToUserIDs)

	// A singular lookup for a missing id surfaces in the errors array.
	resp = doRequest(t, app, http.MethodPost, "/graphql", fiber.Map{
		"query": `{ user(id: "ghost") { id } }`,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var errResult struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	decodeBody(t, resp, &errResult)
	assert.NotEmpty(t, errResult.Errors)
	assert.Contains(t, errResult.Errors[0].Message, "doesn't exist")

	// A missing query is an HTTP-level 400.
	resp = doRequest(t, app, http.MethodPost, "/graphql", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
