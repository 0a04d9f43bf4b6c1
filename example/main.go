package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-location"
	"github.com/goliatone/go-location/ssr"
)

const appBase = "/MyApp"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Href      string    `json:"href,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UserStore struct {
	sync.RWMutex
	users map[string]User
}

func NewUserStore() *UserStore {
	store := &UserStore{users: map[string]User{}}
	for _, u := range []struct{ name, email string }{
		{"Julie Smith", "julie.smith@example.com"},
		{"Jose Bates", "jose.bates@example.com"},
		{"Brad Miles", "brad.miles@example.com"},
	} {
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(u.email)).String()
		store.users[id] = User{
			ID:        id,
			Name:      u.name,
			Email:     u.email,
			CreatedAt: time.Now(),
		}
	}
	return store
}

// Page is the server rendered view of a location.
type Page struct {
	Location string `json:"location"`
	Search   string `json:"search,omitempty"`
	Title    string `json:"title"`
	Users    []User `json:"users,omitempty"`
	User     *User  `json:"user,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

func newApp(store *UserStore, logger location.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "go-location - SSR",
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]any{"success": true})
	})

	app.Use(appBase, ssr.NewFiber(ssr.Config{
		Base:   appBase,
		Logger: logger,
	}))
	app.Get(appBase+"/*", render(store))
	app.Get(appBase, render(store))

	return app
}

func render(store *UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r := ssr.FromFiber(c)
		loc := r.Location()

		page := Page{Location: loc, Search: r.Search()}
		segments := strings.Split(strings.Trim(loc, "/"), "/")

		switch {
		case loc == "/":
			page.Title = "Home"
			page.Links = []Link{
				{Label: "Users", Href: r.Href("/users")},
				{Label: "Account", Href: r.Href("/account")},
			}
		case segments[0] == "users" && len(segments) == 1:
			page.Title = "Users"
			page.Users = listUsers(store, r)
		case segments[0] == "users" && len(segments) == 2:
			user, ok := getUser(store, segments[1])
			if !ok {
				return c.Status(http.StatusNotFound).JSON(Page{Location: loc, Title: "User not found"})
			}
			page.Title = user.Name
			page.User = &user
		case loc == "/account":
			// no session in this demo, every visitor signs in first
			r.Navigate("/login?next=" + location.Encode(loc))
		case loc == "/login":
			page.Title = "Sign in"
			page.Links = []Link{{Label: "Back home", Href: r.Href("/")}}
		default:
			return c.Status(http.StatusNotFound).JSON(Page{Location: loc, Title: "Not found"})
		}

		if redirected, err := ssr.RedirectFiber(c); redirected || err != nil {
			return err
		}
		return c.JSON(page)
	}
}

func listUsers(store *UserStore, r *location.Router) []User {
	store.RLock()
	users := make([]User, 0, len(store.users))
	for _, u := range store.users {
		u.Href = r.Href("/users/" + u.ID)
		users = append(users, u)
	}
	store.RUnlock()

	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users
}

func getUser(store *UserStore, id string) (User, bool) {
	store.RLock()
	defer store.RUnlock()
	u, ok := store.users[id]
	return u, ok
}

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Panic(err)
	}
	defer zl.Sync()

	app := newApp(NewUserStore(), location.NewZapLogger(zl))

	go func() {
		if err := app.Listen(":9092"); err != nil {
			log.Panic(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	_ = <-c

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Panic(err)
	}
}
