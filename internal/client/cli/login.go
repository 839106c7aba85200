package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/asaraswat/ecotrackify/internal/client/services"
	"github.com/asaraswat/ecotrackify/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// LoginView is the sign-in screen. Both fields must be non-empty before
// anything is sent; a response without the exact success marker is treated
// as a credential failure.
type LoginView struct {
	auth   services.AuthService
	router *Router
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger

	state ViewState
}

func NewLoginView(auth services.AuthService, router *Router, reader *bufio.Reader, out io.Writer, log logging.Logger) *LoginView {
	return &LoginView{auth: auth, router: router, reader: reader, out: out, log: log}
}

// State returns the view's position in its submit cycle.
func (v *LoginView) State() ViewState { return v.state }

func (v *LoginView) Show(ctx context.Context) error {
	fmt.Fprintln(v.out, "-- Sign In --")

	email, err := getSimpleText(v.reader, "Email", v.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", v.out)
	if err != nil {
		return err
	}

	if email == "" || password == "" {
		v.state = StateFailed
		fmt.Fprintln(v.out, "Incorrect email or password.")
		return nil
	}

	v.state = StateSubmitting
	if err := v.auth.Login(ctx, email, password); err != nil {
		v.state = StateFailed
		v.log.Debug(ctx, "login failed", "error", err)
		fmt.Fprintln(v.out, "Incorrect email or password.")
		return nil
	}

	v.state = StateSucceeded
	fmt.Fprintln(v.out, "Login successful.")
	return v.router.Navigate(ctx, "/home")
}
