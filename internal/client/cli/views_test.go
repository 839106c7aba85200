package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/asaraswat/ecotrackify/internal/client/models"
)

// ---- shared fakes for view tests ----

type fakeAuth struct {
	LoginErr    error
	RegisterErr error
	LogoutErr   error

	LoginCalls    int
	RegisterCalls int
	LogoutCalls   int

	LastEmail    string
	LastPassword string
	LastConfirm  string
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) error {
	f.LoginCalls++
	f.LastEmail = email
	f.LastPassword = password
	return f.LoginErr
}

func (f *fakeAuth) Register(ctx context.Context, email, password, passwordConfirm string) error {
	f.RegisterCalls++
	f.LastEmail = email
	f.LastPassword = password
	f.LastConfirm = passwordConfirm
	return f.RegisterErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

type fakeFootprints struct {
	SubmitRet *models.Breakdown
	SubmitErr error
	CachedRet *models.Breakdown
	CachedErr error

	SubmitCalls int
	LastValues  models.FootprintValues
}

func (f *fakeFootprints) Submit(ctx context.Context, values models.FootprintValues) (*models.Breakdown, error) {
	f.SubmitCalls++
	f.LastValues = values
	return f.SubmitRet, f.SubmitErr
}

func (f *fakeFootprints) Cached(ctx context.Context) (*models.Breakdown, error) {
	return f.CachedRet, f.CachedErr
}

type fakeTips struct {
	ListRet []models.Tip
	ListErr error
	AddRet  *models.Tip
	AddErr  error

	ListCalls int
	AddCalls  int
	LastAdded string
}

func (f *fakeTips) List(ctx context.Context) ([]models.Tip, error) {
	f.ListCalls++
	return f.ListRet, f.ListErr
}

func (f *fakeTips) Add(ctx context.Context, message string) (*models.Tip, error) {
	f.AddCalls++
	f.LastAdded = message
	return f.AddRet, f.AddErr
}

// stubView records navigations for router assertions.
type stubView struct {
	ShowCalls int
}

func (s *stubView) Show(ctx context.Context) error {
	s.ShowCalls++
	return nil
}

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

// stubPasswords replaces the password seam with scripted answers and
// returns a restore function.
func stubPasswords(answers ...string) func() {
	old := getPassword
	i := 0
	getPassword = func(prompt string, w io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	return func() { getPassword = old }
}
