package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/shelterdesk/portal/internal/common"
	"github.com/shelterdesk/portal/internal/models"
	"github.com/shelterdesk/portal/internal/session"
)

// outputRec captures printlnFn output; safe for use from helper goroutines.
type outputRec struct {
	mu    sync.Mutex
	lines []string
}

func recordOutput(t *testing.T) *outputRec {
	t.Helper()
	rec := &outputRec{}
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		rec.mu.Lock()
		rec.lines = append(rec.lines, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
		rec.mu.Unlock()
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return rec
}

func (r *outputRec) contains(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func (r *outputRec) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func stubInputs(t *testing.T, email string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

type fakeAuthService struct {
	loginEmail string
	loginPass  string
	loginErr   error

	refreshErr error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) error {
	f.loginEmail, f.loginPass = email, password
	return f.loginErr
}
func (f *fakeAuthService) Refresh(context.Context) error { return f.refreshErr }
func (f *fakeAuthService) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func TestLogin_Success(t *testing.T) {
	muteOutput(t)

	f := &fakeAuthService{}
	a := &App{auth: f}

	restore := stubInputs(t, "ann@example.org", []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "ann@example.org" {
		t.Fatalf("Login email mismatch: %q", f.loginEmail)
	}
	if f.loginPass != "secret" {
		t.Fatalf("Login password mismatch: %q", f.loginPass)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	rec := recordOutput(t)

	f := &fakeAuthService{loginErr: common.ErrUnauthorized}
	a := &App{auth: f}

	restore := stubInputs(t, "ann@example.org", []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if !rec.contains("wrong email or password") {
		t.Fatalf("missing bad-credentials message, got: %v", rec.all())
	}
}

func TestLogout_BackendFailureStillSignsOut(t *testing.T) {
	muteOutput(t)

	f := &fakeAuthService{logoutErr: errors.New("backend down")}
	a := &App{auth: f}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatal("backend logout not attempted")
	}
}

func TestWhoAmI(t *testing.T) {
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		line := ""
		for _, a := range args {
			line += " " + toString(a)
		}
		lines = append(lines, line)
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	store := session.NewStore()
	store.Set("tok", models.UserProfile{UserName: "ann", Email: "ann@example.org", Roles: []string{"Admin"}})
	a := &App{session: store}

	if err := a.WhoAmI(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("want user and roles lines, got %v", lines)
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
