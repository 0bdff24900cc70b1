package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
	"github.com/dmitrijs2005/hacksnooze/internal/client/view"
)

func (a *App) Home(ctx context.Context) error {
	return a.navigate(ctx, view.Home)
}

// Submit opens or closes the submit form above the story list.
func (a *App) Submit(ctx context.Context) error {
	return a.navigate(ctx, view.NavSubmit)
}

func (a *App) Favorites(ctx context.Context) error {
	return a.navigate(ctx, view.NavFavorites)
}

func (a *App) Mine(ctx context.Context) error {
	return a.navigate(ctx, view.NavMyStories)
}

func (a *App) Profile(ctx context.Context) error {
	return a.navigate(ctx, view.NavProfile)
}

// Post fills in and sends the submit form, opening it first if needed.
// Fields of a rejected submission are offered again as defaults.
func (a *App) Post(ctx context.Context) error {
	if !a.ctrl.IsVisible(view.Submit) {
		if err := a.dispatch(ctx, view.Event{Trigger: view.NavSubmit}); err != nil {
			return err
		}
	}

	draft := a.ctrl.Drafts().Story
	var fields models.StoryFields
	var err error
	if fields.Title, err = getText(a.reader, "Title", draft.Title, a.out); err != nil {
		return a.report(err)
	}
	if fields.Author, err = getText(a.reader, "Author", draft.Author, a.out); err != nil {
		return a.report(err)
	}
	if fields.URL, err = getText(a.reader, "URL", draft.URL, a.out); err != nil {
		return a.report(err)
	}

	out, err := a.ctrl.Dispatch(ctx, view.Event{Trigger: view.SubmitStory, Story: fields})
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Posted %q\n", out.Story.Title)
	return a.Show(ctx)
}

// Star toggles the favorite state of the story referenced by ref.
func (a *App) Star(ctx context.Context, ref string) error {
	return a.onStory(ctx, view.Star, ref)
}

// Trash deletes one of the user's own stories.
func (a *App) Trash(ctx context.Context, ref string) error {
	return a.onStory(ctx, view.Trash, ref)
}

func (a *App) onStory(ctx context.Context, trigger view.Trigger, ref string) error {
	if err := a.dispatch(ctx, view.Event{Trigger: trigger, StoryID: a.resolveRef(ref)}); err != nil {
		return err
	}
	return a.Show(ctx)
}

// resolveRef maps a row number of the listed stories to the story id. Any
// other ref is taken as an id.
func (a *App) resolveRef(ref string) string {
	if n, err := strconv.Atoi(ref); err == nil {
		if s, ok := a.ctrl.StoryAt(n); ok {
			return s.ID
		}
	}
	return ref
}

func (a *App) navigate(ctx context.Context, trigger view.Trigger) error {
	if err := a.dispatch(ctx, view.Event{Trigger: trigger}); err != nil {
		return err
	}
	return a.Show(ctx)
}

// dispatch sends ev to the controller and reports a failure to the user.
func (a *App) dispatch(ctx context.Context, ev view.Event) error {
	if _, err := a.ctrl.Dispatch(ctx, ev); err != nil {
		return a.report(err)
	}
	return nil
}
