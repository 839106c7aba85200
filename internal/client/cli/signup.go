package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/asaraswat/ecotrackify/internal/client/services"
	"github.com/asaraswat/ecotrackify/internal/client/validation"
	"github.com/asaraswat/ecotrackify/internal/logging"
)

// SignupView is the account-creation screen. Guards run in a fixed order
// (email shape, password length, confirmation match) and only the first
// failing check is surfaced. On success the issued token is stored but the
// user is sent back to the login view rather than straight into the app,
// matching the web client's redirect choice.
type SignupView struct {
	auth   services.AuthService
	router *Router
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger

	state ViewState
}

func NewSignupView(auth services.AuthService, router *Router, reader *bufio.Reader, out io.Writer, log logging.Logger) *SignupView {
	return &SignupView{auth: auth, router: router, reader: reader, out: out, log: log}
}

// State returns the view's position in its submit cycle.
func (v *SignupView) State() ViewState { return v.state }

func (v *SignupView) Show(ctx context.Context) error {
	fmt.Fprintln(v.out, "-- Sign Up --")

	email, err := getSimpleText(v.reader, "Email", v.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", v.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm Password", v.out)
	if err != nil {
		return err
	}

	if !validation.IsValidEmail(email) {
		v.state = StateFailed
		fmt.Fprintln(v.out, "Please enter a valid email address.")
		return nil
	}
	if !validation.IsValidPassword(password) {
		v.state = StateFailed
		fmt.Fprintf(v.out, "Password must be at least %d characters long.\n", validation.MinPasswordLength)
		return nil
	}
	if !validation.PasswordsMatch(password, confirm) {
		v.state = StateFailed
		fmt.Fprintln(v.out, "Passwords do not match.")
		return nil
	}

	v.state = StateSubmitting
	if err := v.auth.Register(ctx, email, password, confirm); err != nil {
		v.state = StateFailed
		v.log.Debug(ctx, "signup failed", "error", err)
		fmt.Fprintln(v.out, "Signup failed, please try again.")
		return nil
	}

	v.state = StateSucceeded
	fmt.Fprintln(v.out, "Account created. Please sign in.")
	return v.router.Navigate(ctx, "/login")
}
