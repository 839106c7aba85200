package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/asaraswat/ecotrackify/internal/client/services"
)

// Nav carries the navigation actions available everywhere: the home/tips
// links are plain REPL commands, logout is the only one with behavior of
// its own. It is otherwise stateless.
type Nav struct {
	auth   services.AuthService
	router *Router
	out    io.Writer
}

func NewNav(auth services.AuthService, router *Router, out io.Writer) *Nav {
	return &Nav{auth: auth, router: router, out: out}
}

// Logout clears the session and returns the user to the entry route.
func (n *Nav) Logout(ctx context.Context) error {
	if err := n.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(n.out, "Logged out.")
	return n.router.Navigate(ctx, "/")
}
