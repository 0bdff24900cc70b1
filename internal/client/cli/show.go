package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hacksnooze/internal/client/client"
	"github.com/dmitrijs2005/hacksnooze/internal/client/render"
	"github.com/dmitrijs2005/hacksnooze/internal/client/view"
)

// Show prints every visible panel. Story rows are numbered in the order used
// by star and trash.
func (a *App) Show(context.Context) error {
	n := 0
	for _, p := range a.ctrl.Visible() {
		fmt.Fprintf(a.out, "== %s ==\n", p)

		switch p {
		case view.AuthForms:
			fmt.Fprintln(a.out, "Use 'login' to sign in or 'register' to create an account.")
			continue
		case view.Submit:
			fmt.Fprintln(a.out, "Use 'post' to fill in the story form, 'submit' to close it.")
			continue
		}

		v := a.ctrl.View(p)
		if v.Body != "" {
			fmt.Fprintln(a.out, v.Body)
		}
		if v.Empty != "" {
			fmt.Fprintln(a.out, v.Empty)
		}
		for _, r := range v.Rows {
			n++
			fmt.Fprintf(a.out, "%3d. %s\n", n, r.Markup)
		}
	}
	return nil
}

// report prints a user-facing description of err and returns it. Error
// text may carry server messages and is sanitized like story fields.
func (a *App) report(err error) error {
	fmt.Fprintln(a.out, "Error:", render.Sanitize(describe(err)))
	return err
}

func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "invalid credentials or expired session"
	case errors.Is(err, client.ErrConflict):
		return "that username is already taken"
	case errors.Is(err, client.ErrNotFound):
		return "the story no longer exists"
	case errors.Is(err, client.ErrUnavailable):
		return "the server is unreachable, try again later"
	default:
		return err.Error()
	}
}
