package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-location"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		raw  string
		want string
	}{
		{"no base", "", "/users/JohnDoe", "/users/JohnDoe"},
		{"root base", "/", "/users/JohnDoe", "/users/JohnDoe"},
		{"root base decodes", "/", "/%D1%88%D0%B5%D0%BB%D0%BB%D1%8B", "/шеллы"},
		{"exact base", "/app", "/app", "/"},
		{"base with trailing slash path", "/app", "/app/", "/"},
		{"strips base", "/app", "/app/dashboard", "/dashboard"},
		{"mixed case", "/MyApp", "/myAPP/users/JohnDoe", "/users/JohnDoe"},
		{"remainder keeps case", "/myapp", "/MYAPP/Users/JohnDoe", "/Users/JohnDoe"},
		{"outside base", "/MyApp", "/MyOtherApp/users/JohnDoe", "~/MyOtherApp/users/JohnDoe"},
		{"partial segment", "/MyApp", "/MyAppX/users", "~/MyAppX/users"},
		{"outside base decoded", "/app", "/%D1%88", "~/ш"},
		{"base trailing slash", "/app/", "/app/x", "/x"},
		{"base without leading slash", "app", "/app/x", "/x"},
		{"multi segment base", "/a/b", "/a/b/c", "/c"},
		{"multi segment base short path", "/a/b", "/a", "~/a"},
		{"collapses leading slashes", "/app", "/app//x", "/x"},
		{"unescaped base, escaped path", "/hello мир", "/hello%20%D0%BC%D0%B8%D1%80/rel", "/rel"},
		{"escaped base, unescaped path", "/hello%20%D0%BC%D0%B8%D1%80", "/hello мир/rel", "/rel"},
		{"unicode base case", "/Мир", "/мир/x", "/x"},
		{"encoded remainder", "/app", "/app/%D0%BF%D0%BE%D0%BA%D0%B0%D0%B7%D0%B0%D1%82%D1%8C%20%D0%B2%D1%81%D0%B5", "/показать все"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, location.Resolve(tt.base, tt.raw))
		})
	}
}

func TestUnresolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		rel  string
		want string
	}{
		{"no base", "", "/dashboard", "/dashboard"},
		{"root base is never prepended", "/", "/dashboard", "/dashboard"},
		{"prepends base", "/app", "/dashboard", "/app/dashboard"},
		{"root relative", "/app", "/", "/app"},
		{"roots target", "/app", "dashboard", "/app/dashboard"},
		{"roots target without base", "", "dashboard", "/dashboard"},
		{"keeps configured encoding", "/hello%20%D0%BC%D0%B8%D1%80", "/rel", "/hello%20%D0%BC%D0%B8%D1%80/rel"},
		{"keeps configured unescaped base", "/hello мир", "/rel", "/hello мир/rel"},
		{"marker bypasses base", "/app", "~/other/page", "/other/page"},
		{"bare marker", "/app", "~", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, location.Unresolve(tt.base, tt.rel))
		})
	}
}

func TestResolveRoundTrip(t *testing.T) {
	cases := []struct {
		base string
		raw  string
	}{
		{"/app", "/app/dashboard"},
		{"/app", "/app"},
		{"/MyApp", "/MyApp/users/JohnDoe"},
		{"/app", "/elsewhere/x"},
		{"", "/users/1"},
		{"/", "/users/1"},
	}

	for _, c := range cases {
		rel := location.Resolve(c.base, c.raw)
		assert.Equal(t, c.raw, location.Unresolve(c.base, rel), "base=%q raw=%q", c.base, c.raw)
	}
}

func TestResolveRoundTripDropsTrailingSlashAtBase(t *testing.T) {
	cases := []struct {
		base string
		raw  string
		want string
	}{
		{"/app", "/app/", "/app"},
		{"/app/", "/app/", "/app"},
		{"/MyApp", "/myapp/", "/MyApp"},
	}

	for _, c := range cases {
		rel := location.Resolve(c.base, c.raw)
		assert.Equal(t, "/", rel)
		assert.Equal(t, c.want, location.Unresolve(c.base, rel), "base=%q raw=%q", c.base, c.raw)
	}

	assert.Equal(t, "/app", location.NewBase("/app").Join("/"))
	assert.Equal(t, "/app/users/", location.NewBase("/app").Join("/users/"), "only the base itself is normalised")
}

func TestBaseNest(t *testing.T) {
	parent := location.NewBase("/app")
	child := parent.Nest("/Admin/")

	assert.Equal(t, "/app/Admin", child.String())
	assert.Equal(t, "/users", child.Strip("/APP/admin/users"))
	assert.Equal(t, "/app/Admin/users", child.Join("/users"))

	assert.Equal(t, parent, parent.Nest(""))
	assert.Equal(t, "/admin", location.NewBase("").Nest("admin").String())
}

func TestBaseAccessors(t *testing.T) {
	b := location.NewBase("/hello%20world/")
	assert.False(t, b.IsRoot())
	assert.Equal(t, "/hello%20world", b.String())
	assert.Equal(t, "/hello world", b.Decoded())
	assert.Equal(t, location.CaseFoldingSimple, b.CaseFolding())

	assert.True(t, location.NewBase("/").IsRoot())
	assert.True(t, location.NewBase("").IsRoot())
	assert.True(t, location.Base{}.IsRoot())
}

func TestBaseFullCaseFolding(t *testing.T) {
	simple := location.NewBase("/straße")
	full := location.NewBase("/straße", location.WithBaseCaseFolding(location.CaseFoldingFull))

	assert.Equal(t, "~/STRASSE/x", simple.Strip("/STRASSE/x"))
	assert.Equal(t, "/x", full.Strip("/STRASSE/x"))
	assert.Equal(t, location.CaseFoldingFull, full.CaseFolding())
}

func TestCaseFolding(t *testing.T) {
	assert.Equal(t, "simple", location.CaseFolding("").String())
	assert.Equal(t, "simple", location.CaseFolding("bogus").String())
	assert.Equal(t, "full", location.CaseFoldingFull.String())
	assert.Equal(t, "myapp", location.CaseFoldingSimple.Fold("MyApp"))
	assert.Equal(t, "strasse", location.CaseFoldingFull.Fold("Straße"))
}
