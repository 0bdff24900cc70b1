package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
	"github.com/dmitrijs2005/hacksnooze/internal/client/render"
	"github.com/dmitrijs2005/hacksnooze/internal/common"
)

type transition struct {
	guard  func(c *Controller, ev Event) error
	effect func(c *Controller, ctx context.Context, ev Event) (Outcome, error)

	// exclusive transitions allow one request per story at a time.
	exclusive bool
}

var transitions = map[Trigger]transition{
	Home:           {effect: (*Controller).home},
	NavMyStories:   {guard: requireSession, effect: (*Controller).showMyStories},
	NavFavorites:   {guard: requireSession, effect: (*Controller).showFavorites},
	NavProfile:     {guard: requireSession, effect: (*Controller).showProfile},
	NavLogin:       {guard: requireNoSession, effect: (*Controller).toggleAuthForms},
	NavSubmit:      {guard: requireSession, effect: (*Controller).toggleSubmit},
	NavLogout:      {guard: requireSession, effect: (*Controller).logout},
	SubmitLogin:    {guard: requireNoSession, effect: (*Controller).login},
	SubmitRegister: {guard: requireNoSession, effect: (*Controller).register},
	SubmitStory:    {guard: requireSession, effect: (*Controller).submitStory},
	Star:           {guard: requireKnownStory, effect: (*Controller).star, exclusive: true},
	Trash:          {guard: requireOwner, effect: (*Controller).trash, exclusive: true},
}

// ---- guards ----

func requireSession(c *Controller, _ Event) error {
	if c.user == nil {
		return ErrNotLoggedIn
	}
	return nil
}

func requireNoSession(c *Controller, _ Event) error {
	if c.user != nil {
		return ErrLoggedIn
	}
	return nil
}

func requireKnownStory(c *Controller, ev Event) error {
	if err := requireSession(c, ev); err != nil {
		return err
	}
	if c.lookup(ev.StoryID) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownStory, ev.StoryID)
	}
	return nil
}

func requireOwner(c *Controller, ev Event) error {
	if err := requireKnownStory(c, ev); err != nil {
		return err
	}
	if !c.user.Owns(ev.StoryID) {
		return ErrNotOwner
	}
	if !c.visible[MyStories] {
		return ErrNotInMyStories
	}
	return nil
}

// lookup finds a story in the catalog or in the user's own sets.
func (c *Controller) lookup(id string) *models.Story {
	if id == "" {
		return nil
	}
	if s, ok := c.catalog.Get(id); ok {
		return s
	}
	for _, set := range [][]*models.Story{c.user.OwnStories, c.user.Favorites} {
		if i := models.IndexOf(set, id); i >= 0 {
			return set[i]
		}
	}
	return nil
}

// ---- effects ----

func (c *Controller) home(ctx context.Context, _ Event) (Outcome, error) {
	c.hideAll()
	err := c.catalog.Refresh(ctx)
	if err == nil {
		c.catalog.Adopt(c.user)
	}
	c.renderAllStories()
	c.visible[AllStories] = true
	return Outcome{}, err
}

func (c *Controller) showMyStories(context.Context, Event) (Outcome, error) {
	c.hideAll()
	c.renderList(MyStories, c.user.OwnStories, true, noStoriesMsg)
	c.visible[MyStories] = true
	return Outcome{}, nil
}

func (c *Controller) showFavorites(context.Context, Event) (Outcome, error) {
	c.hideAll()
	c.renderList(Favorites, c.user.Favorites, false, noFavoritesMsg)
	c.visible[Favorites] = true
	return Outcome{}, nil
}

func (c *Controller) showProfile(context.Context, Event) (Outcome, error) {
	c.hideAll()
	c.panels[Profile].reset()
	c.panels[Profile].body = c.render.Profile(c.user)
	c.visible[Profile] = true
	return Outcome{}, nil
}

// toggleAuthForms flips AuthForms and AllStories together and hides the rest.
func (c *Controller) toggleAuthForms(context.Context, Event) (Outcome, error) {
	for p := Panel(0); p < panelCount; p++ {
		if p != AuthForms && p != AllStories {
			c.visible[p] = false
		}
	}
	c.visible[AuthForms] = !c.visible[AuthForms]
	c.visible[AllStories] = !c.visible[AllStories]
	return Outcome{}, nil
}

// toggleSubmit keeps AllStories and opens or closes the submit form over it.
func (c *Controller) toggleSubmit(context.Context, Event) (Outcome, error) {
	open := c.visible[Submit]
	c.hideAll()
	c.visible[AllStories] = true
	c.visible[Submit] = !open
	return Outcome{}, nil
}

func (c *Controller) logout(ctx context.Context, _ Event) (Outcome, error) {
	if err := c.users.Logout(ctx); err != nil {
		return Outcome{}, err
	}
	c.user = nil
	c.drafts = Drafts{}
	c.hideAll()
	return Outcome{Reload: true}, nil
}

func (c *Controller) login(ctx context.Context, ev Event) (Outcome, error) {
	defer common.WipeByteArray(ev.Password)

	user, err := c.users.Login(ctx, ev.Username, ev.Password)
	if err != nil {
		c.drafts.LoginUsername = ev.Username
		return Outcome{}, err
	}
	c.drafts.LoginUsername = ""
	c.signedIn(user)
	return Outcome{}, nil
}

func (c *Controller) register(ctx context.Context, ev Event) (Outcome, error) {
	defer common.WipeByteArray(ev.Password)

	user, err := c.users.Register(ctx, ev.Username, ev.Password, ev.Name)
	if err != nil {
		c.drafts.RegisterUsername, c.drafts.RegisterName = ev.Username, ev.Name
		return Outcome{}, err
	}
	c.drafts.RegisterUsername, c.drafts.RegisterName = "", ""
	c.signedIn(user)
	return Outcome{}, nil
}

func (c *Controller) signedIn(user *models.User) {
	c.catalog.Adopt(user)
	c.user = user
	c.hideAll()
	c.renderAllStories()
	c.visible[AllStories] = true
}

func (c *Controller) submitStory(ctx context.Context, ev Event) (Outcome, error) {
	fields := ev.Story
	fields.Title = strings.TrimSpace(fields.Title)
	fields.URL = strings.TrimSpace(fields.URL)
	fields.Author = strings.TrimSpace(fields.Author)
	if fields.Title == "" || fields.URL == "" {
		c.drafts.Story = fields
		return Outcome{}, ErrInvalidForm
	}

	story, err := c.catalog.AddStory(ctx, c.user, fields)
	if err != nil {
		c.drafts.Story = fields
		return Outcome{}, err
	}

	all := &c.panels[AllStories]
	all.rows = append([]Row{c.row(story, false)}, all.rows...)
	all.empty = ""

	c.drafts.Story = models.StoryFields{}
	c.visible[Submit] = false
	return Outcome{Story: story}, nil
}

// star toggles the favorite and then flips the star on every row showing
// the story. Panels are not re-rendered.
func (c *Controller) star(ctx context.Context, ev Event) (Outcome, error) {
	fav := c.user.IsFavorite(ev.StoryID)
	if err := c.users.ToggleFavorite(ctx, c.user, ev.StoryID, !fav); err != nil {
		return Outcome{}, err
	}

	for p := range c.panels {
		rows := c.panels[p].rows
		for i := range rows {
			if rows[i].Story.ID == ev.StoryID {
				rows[i].Favorite = !fav
				rows[i].Markup = c.render.Story(render.StoryView{Story: rows[i].Story, Own: rows[i].Own, Favorite: !fav})
			}
		}
	}
	return Outcome{}, nil
}

func (c *Controller) trash(ctx context.Context, ev Event) (Outcome, error) {
	if err := c.catalog.RemoveStory(ctx, c.user, ev.StoryID); err != nil {
		return Outcome{}, err
	}

	for p := range c.panels {
		c.panels[p].rows = withoutRow(c.panels[p].rows, ev.StoryID)
	}
	c.hideAll()
	c.renderList(MyStories, c.user.OwnStories, true, noStoriesMsg)
	c.visible[MyStories] = true
	return Outcome{}, nil
}

// ---- rendering ----

func (c *Controller) hideAll() {
	c.visible = [panelCount]bool{}
}

func (c *Controller) row(s *models.Story, own bool) Row {
	fav := c.user.IsFavorite(s.ID)
	return Row{
		Story:    s,
		Own:      own,
		Favorite: fav,
		Markup:   c.render.Story(render.StoryView{Story: s, Own: own, Favorite: fav}),
	}
}

func (c *Controller) renderAllStories() {
	c.renderList(AllStories, c.catalog.Stories(), false, "")
}

func (c *Controller) renderList(p Panel, stories []*models.Story, own bool, emptyMsg string) {
	s := &c.panels[p]
	s.reset()
	for _, story := range stories {
		s.rows = append(s.rows, c.row(story, own))
	}
	if len(s.rows) == 0 && emptyMsg != "" {
		s.empty = c.render.Empty(emptyMsg)
	}
}

func withoutRow(rows []Row, id string) []Row {
	out := rows[:0:0]
	for _, r := range rows {
		if r.Story.ID != id {
			out = append(out, r)
		}
	}
	return out
}
