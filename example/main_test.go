package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goliatone/go-location"
)

func setupTest() (*fiber.App, *UserStore) {
	store := NewUserStore()
	return newApp(store, location.NewZapLogger(zap.NewNop())), store
}

func getPage(t *testing.T, app *fiber.App, target string) (*http.Response, Page) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)

	var page Page
	if resp.StatusCode != http.StatusFound {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	}
	return resp, page
}

func TestHomePage(t *testing.T) {
	app, _ := setupTest()

	resp, page := getPage(t, app, "/MyApp")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", page.Location)
	assert.Equal(t, "Home", page.Title)
	assert.Equal(t, []Link{
		{Label: "Users", Href: "/MyApp/users"},
		{Label: "Account", Href: "/MyApp/account"},
	}, page.Links)
}

func TestListUsers(t *testing.T) {
	app, _ := setupTest()

	resp, page := getPage(t, app, "/myapp/users?sort=name")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/users", page.Location)
	assert.Equal(t, "sort=name", page.Search)
	require.Len(t, page.Users, 3)

	assert.Equal(t, "Brad Miles", page.Users[0].Name)
	for _, u := range page.Users {
		assert.Equal(t, "/MyApp/users/"+u.ID, u.Href)
	}
}

func TestGetUser(t *testing.T) {
	app, store := setupTest()

	var id string
	for k := range store.users {
		id = k
		break
	}

	resp, page := getPage(t, app, "/MyApp/users/"+id)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, page.User)
	assert.Equal(t, id, page.User.ID)

	resp, _ = getPage(t, app, "/MyApp/users/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAccountRedirectsToLogin(t *testing.T) {
	app, _ := setupTest()

	resp, _ := getPage(t, app, "/MyApp/account")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/MyApp/login?next=/account", resp.Header.Get("Location"))

	resp, page := getPage(t, app, "/MyApp/login?next=/account")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Sign in", page.Title)
	assert.Equal(t, "next=/account", page.Search)
}

func TestUnknownPage(t *testing.T) {
	app, _ := setupTest()

	resp, page := getPage(t, app, "/MyApp/nowhere")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "/nowhere", page.Location)
}

func TestHealth(t *testing.T) {
	app, _ := setupTest()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
