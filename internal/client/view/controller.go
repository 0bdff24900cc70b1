// Package view holds the view-state machine of the client: which panels are
// visible, what they contain and which actions are allowed in the current
// session.
package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
	"github.com/dmitrijs2005/hacksnooze/internal/client/render"
	"github.com/dmitrijs2005/hacksnooze/internal/logging"
	"golang.org/x/sync/errgroup"
)

type Sessions interface {
	Load(ctx context.Context) (models.Session, error)
}

type Users interface {
	Hydrate(ctx context.Context, session models.Session) (*models.User, error)
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Register(ctx context.Context, username string, password []byte, name string) (*models.User, error)
	Logout(ctx context.Context) error
	ToggleFavorite(ctx context.Context, user *models.User, storyID string, add bool) error
}

type Catalog interface {
	Refresh(ctx context.Context) error
	Stories() []*models.Story
	Get(id string) (*models.Story, bool)
	AddStory(ctx context.Context, user *models.User, fields models.StoryFields) (*models.Story, error)
	RemoveStory(ctx context.Context, user *models.User, storyID string) error
	Adopt(user *models.User)
}

// Controller owns the view state. Dispatch calls are serialized; Star and
// Trash events for a story that already has a request in flight are
// rejected with ErrInFlight instead of being queued.
type Controller struct {
	sessions Sessions
	users    Users
	catalog  Catalog
	render   render.Renderer
	log      logging.Logger

	mu      sync.Mutex
	user    *models.User
	visible [panelCount]bool
	panels  [panelCount]panelState
	drafts  Drafts

	busyMu sync.Mutex
	busy   map[string]struct{}
}

func NewController(s Sessions, u Users, c Catalog, r render.Renderer, log logging.Logger) *Controller {
	return &Controller{
		sessions: s,
		users:    u,
		catalog:  c,
		render:   r,
		log:      log,
		busy:     make(map[string]struct{}),
	}
}

// Boot computes the initial state: the stored session is hydrated while the
// catalog is fetched, then AllStories is shown. A failed fetch is returned
// after the state is set, with an empty story list.
func (c *Controller) Boot(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.sessions.Load(ctx)
	if err != nil {
		c.log.Warn(ctx, "failed to load stored session", "error", err)
		session = models.Session{}
	}

	var (
		user       *models.User
		refreshErr error
		g          errgroup.Group
	)
	g.Go(func() error {
		var err error
		user, err = c.users.Hydrate(ctx, session)
		return err
	})
	g.Go(func() error {
		refreshErr = c.catalog.Refresh(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	c.catalog.Adopt(user)
	c.user = user
	c.hideAll()
	c.renderAllStories()
	c.visible[AllStories] = true

	c.log.Debug(ctx, "booted", "logged_in", user != nil)
	return refreshErr
}

// Dispatch runs the transition for ev. A failed guard returns its error and
// leaves the state as it was.
func (c *Controller) Dispatch(ctx context.Context, ev Event) (Outcome, error) {
	tr, ok := transitions[ev.Trigger]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownTrigger, ev.Trigger)
	}

	if tr.exclusive {
		key := string(ev.Trigger) + ":" + ev.StoryID
		if !c.claim(key) {
			return Outcome{}, ErrInFlight
		}
		defer c.release(key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if tr.guard != nil {
		if err := tr.guard(c, ev); err != nil {
			return Outcome{}, err
		}
	}

	out, err := tr.effect(c, ctx, ev)
	if err != nil {
		c.log.Debug(ctx, "transition failed", "trigger", string(ev.Trigger), "error", err)
		return out, err
	}
	c.log.Debug(ctx, "transition", "trigger", string(ev.Trigger), "visible", fmt.Sprint(c.visiblePanels()))
	return out, nil
}

func (c *Controller) claim(key string) bool {
	c.busyMu.Lock()
	defer c.busyMu.Unlock()
	if _, ok := c.busy[key]; ok {
		return false
	}
	c.busy[key] = struct{}{}
	return true
}

func (c *Controller) release(key string) {
	c.busyMu.Lock()
	delete(c.busy, key)
	c.busyMu.Unlock()
}

// Visible returns the visible panels in display order.
func (c *Controller) Visible() []Panel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visiblePanels()
}

func (c *Controller) visiblePanels() []Panel {
	var out []Panel
	for p := Panel(0); p < panelCount; p++ {
		if c.visible[p] {
			out = append(out, p)
		}
	}
	return out
}

func (c *Controller) IsVisible(p Panel) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return p >= 0 && p < panelCount && c.visible[p]
}

// View returns a copy of the rendered content of p.
func (c *Controller) View(p Panel) PanelView {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p < 0 || p >= panelCount {
		return PanelView{Panel: p}
	}
	s := c.panels[p]
	return PanelView{
		Panel: p,
		Rows:  append([]Row(nil), s.rows...),
		Empty: s.empty,
		Body:  s.body,
	}
}

// Listed returns the story rows of all visible panels in display order. It
// is the numbering used by StoryAt.
func (c *Controller) Listed() []Row {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listed()
}

func (c *Controller) listed() []Row {
	var out []Row
	for _, p := range c.visiblePanels() {
		out = append(out, c.panels[p].rows...)
	}
	return out
}

// StoryAt returns the n-th (1-based) listed story.
func (c *Controller) StoryAt(n int) (*models.Story, bool) {
	rows := c.Listed()
	if n < 1 || n > len(rows) {
		return nil, false
	}
	return rows[n-1].Story, true
}

// User returns the logged-in user or nil.
func (c *Controller) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

func (c *Controller) LoggedIn() bool {
	return c.User() != nil
}

// Nav lists the navigation entries shown for the current session.
func (c *Controller) Nav() []Trigger {
	if c.LoggedIn() {
		return []Trigger{Home, NavSubmit, NavFavorites, NavMyStories, NavProfile, NavLogout}
	}
	return []Trigger{Home, NavLogin}
}

func (c *Controller) Drafts() Drafts {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drafts
}
