package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hacksnooze/internal/client/view"
	"github.com/dmitrijs2005/hacksnooze/internal/common"
)

// getText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getText     = GetTextWithDefault
	getPassword = GetPassword
)

// openAuthForms reveals the login/register panel when it is not shown yet.
func (a *App) openAuthForms(ctx context.Context) error {
	if a.ctrl.IsVisible(view.AuthForms) {
		return nil
	}
	return a.dispatch(ctx, view.Event{Trigger: view.NavLogin})
}

// Login prompts for credentials and submits the login form. The username of
// a failed attempt is offered again next time. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	if err := a.openAuthForms(ctx); err != nil {
		return err
	}

	username, err := getText(a.reader, "Username", a.ctrl.Drafts().LoginUsername, a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(password)

	if err := a.dispatch(ctx, view.Event{Trigger: view.SubmitLogin, Username: username, Password: password}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", username)
	return a.Show(ctx)
}

// Register prompts for a username, a display name and a password and submits
// the create-account form.
func (a *App) Register(ctx context.Context) error {
	if err := a.openAuthForms(ctx); err != nil {
		return err
	}

	drafts := a.ctrl.Drafts()
	username, err := getText(a.reader, "Username", drafts.RegisterUsername, a.out)
	if err != nil {
		return a.report(err)
	}
	name, err := getText(a.reader, "Name", drafts.RegisterName, a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(password)

	ev := view.Event{Trigger: view.SubmitRegister, Username: username, Name: name, Password: password}
	if err := a.dispatch(ctx, ev); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account created, logged in as %s\n", username)
	return a.Show(ctx)
}

// Logout forgets the stored session and restarts the client state from
// scratch.
func (a *App) Logout(ctx context.Context) error {
	out, err := a.ctrl.Dispatch(ctx, view.Event{Trigger: view.NavLogout})
	if err != nil {
		return a.report(err)
	}
	if out.Reload {
		fmt.Fprintln(a.out, "Logged out")
		a.boot(ctx)
	}
	return a.Show(ctx)
}
