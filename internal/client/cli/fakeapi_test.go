package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// ---- in-memory news API ----

type apiStory struct {
	StoryID  string `json:"storyId"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	URL      string `json:"url"`
	Username string `json:"username"`
}

type apiUser struct {
	username  string
	name      string
	password  string
	favorites []string
}

type fakeAPI struct {
	mu      sync.Mutex
	stories []apiStory
	users   map[string]*apiUser
	nextID  int
	revoked map[string]bool
}

func newFakeAPI(t *testing.T) (*fakeAPI, string) {
	t.Helper()
	api := &fakeAPI{
		stories: []apiStory{
			{StoryID: "s1", Title: "First", Author: "Bob", URL: "https://www.first.com/a", Username: "bob"},
			{StoryID: "s2", Title: "Second", Author: "Bob", URL: "http://second.org", Username: "bob"},
		},
		users: map[string]*apiUser{
			"alice": {username: "alice", name: "Alice", password: "pw"},
			"bob":   {username: "bob", name: "Bob", password: "pw"},
		},
		revoked: map[string]bool{},
	}
	srv := httptest.NewServer(api.routes())
	t.Cleanup(srv.Close)
	return api, srv.URL
}

func (f *fakeAPI) routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/login", f.login)
	r.Post("/signup", f.signup)
	r.Get("/stories", f.listStories)
	r.Post("/stories", f.addStory)
	r.Delete("/stories/{id}", f.deleteStory)
	r.Get("/users/{username}", f.getUser)
	r.Post("/users/{username}/favorites/{id}", f.favorite(true))
	r.Delete("/users/{username}/favorites/{id}", f.favorite(false))
	return r
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, status int, msg string) {
	reply(w, status, map[string]any{"error": map[string]any{"status": status, "message": msg}})
}

func tokenFor(username string) string { return "tok-" + username }

// caller returns the user owning token, or nil.
func (f *fakeAPI) caller(token string) *apiUser {
	if f.revoked[token] {
		return nil
	}
	return f.users[strings.TrimPrefix(token, "tok-")]
}

func (f *fakeAPI) storyByID(id string) (apiStory, bool) {
	for _, s := range f.stories {
		if s.StoryID == id {
			return s, true
		}
	}
	return apiStory{}, false
}

func (f *fakeAPI) userJSON(u *apiUser) map[string]any {
	favs := []apiStory{}
	for _, id := range u.favorites {
		if s, ok := f.storyByID(id); ok {
			favs = append(favs, s)
		}
	}
	own := []apiStory{}
	for _, s := range f.stories {
		if s.Username == u.username {
			own = append(own, s)
		}
	}
	return map[string]any{
		"username":  u.username,
		"name":      u.name,
		"createdAt": "2024-03-09T12:00:00Z",
		"favorites": favs,
		"stories":   own,
	}
}

type authBody struct {
	User struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
	} `json:"user"`
}

func (f *fakeAPI) login(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var b authBody
	_ = json.NewDecoder(r.Body).Decode(&b)
	u, ok := f.users[b.User.Username]
	if !ok || u.password != b.User.Password {
		fail(w, http.StatusUnauthorized, "Invalid password")
		return
	}
	reply(w, http.StatusOK, map[string]any{"token": tokenFor(u.username), "user": f.userJSON(u)})
}

func (f *fakeAPI) signup(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var b authBody
	_ = json.NewDecoder(r.Body).Decode(&b)
	if _, ok := f.users[b.User.Username]; ok {
		fail(w, http.StatusConflict, "There is already a user with username '"+b.User.Username+"'.")
		return
	}
	u := &apiUser{username: b.User.Username, name: b.User.Name, password: b.User.Password}
	f.users[u.username] = u
	reply(w, http.StatusCreated, map[string]any{"token": tokenFor(u.username), "user": f.userJSON(u)})
}

func (f *fakeAPI) listStories(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reply(w, http.StatusOK, map[string]any{"stories": f.stories})
}

func (f *fakeAPI) addStory(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var b struct {
		Token string   `json:"token"`
		Story apiStory `json:"story"`
	}
	_ = json.NewDecoder(r.Body).Decode(&b)
	u := f.caller(b.Token)
	if u == nil {
		fail(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	f.nextID++
	s := b.Story
	s.StoryID = fmt.Sprintf("story-%d", f.nextID)
	s.Username = u.username
	f.stories = append([]apiStory{s}, f.stories...)
	reply(w, http.StatusCreated, map[string]any{"story": s})
}

func (f *fakeAPI) deleteStory(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.caller(r.URL.Query().Get("token"))
	s, ok := f.storyByID(chi.URLParam(r, "id"))
	switch {
	case u == nil:
		fail(w, http.StatusUnauthorized, "Invalid token")
		return
	case !ok:
		fail(w, http.StatusNotFound, "No such story")
		return
	case s.Username != u.username:
		fail(w, http.StatusForbidden, "Not your story")
		return
	}
	f.stories = slices.DeleteFunc(f.stories, func(x apiStory) bool { return x.StoryID == s.StoryID })
	for _, other := range f.users {
		other.favorites = slices.DeleteFunc(other.favorites, func(id string) bool { return id == s.StoryID })
	}
	reply(w, http.StatusOK, map[string]any{"story": s})
}

func (f *fakeAPI) getUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.caller(r.URL.Query().Get("token"))
	if u == nil || u.username != chi.URLParam(r, "username") {
		fail(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	reply(w, http.StatusOK, map[string]any{"user": f.userJSON(u)})
}

func (f *fakeAPI) favorite(add bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		u := f.caller(r.URL.Query().Get("token"))
		if u == nil || u.username != chi.URLParam(r, "username") {
			fail(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		id := chi.URLParam(r, "id")
		if _, ok := f.storyByID(id); !ok {
			fail(w, http.StatusNotFound, "No such story")
			return
		}
		u.favorites = slices.DeleteFunc(u.favorites, func(x string) bool { return x == id })
		if add {
			u.favorites = append(u.favorites, id)
		}
		reply(w, http.StatusOK, map[string]any{"user": f.userJSON(u)})
	}
}

func (f *fakeAPI) favoritesOf(username string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.users[username].favorites)
}

func (f *fakeAPI) storyIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.stories))
	for _, s := range f.stories {
		ids = append(ids, s.StoryID)
	}
	return ids
}

func (f *fakeAPI) revoke(token string) {
	f.mu.Lock()
	f.revoked[token] = true
	f.mu.Unlock()
}
