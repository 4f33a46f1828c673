package pages

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/akulagin/storefront/pkg/apiclient"
)

// registerNavDelay gives the user time to read the confirmation before
// the page moves on to login.
const registerNavDelay = 800 * time.Millisecond

// RegisterPage creates an account. It always submits role USER: the
// server is the sole authority on privilege assignment and the client
// offers no way to self-grant an elevated role.
type RegisterPage struct {
	backend Backend

	Name     string
	Email    string
	Password string

	phase Phase
	msg   string
	err   error
	nav   *Nav
}

func NewRegisterPage(b Backend) *RegisterPage {
	return &RegisterPage{
		backend:  b,
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "password",
	}
}

func (p *RegisterPage) Route() string { return "/register" }

func (p *RegisterPage) Phase() Phase { return p.phase }

func (p *RegisterPage) Nav() *Nav { return p.nav }

func (p *RegisterPage) Submit(ctx context.Context) error {
	p.phase = PhaseSubmitting
	p.err = nil
	p.msg = ""
	p.nav = nil

	err := p.backend.Register(ctx, apiclient.RegisterInput{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
		Role:     apiclient.RoleUser,
	})
	if ctx.Err() != nil {
		p.phase = PhaseIdle
		return ctx.Err()
	}
	if err != nil {
		p.phase = PhaseIdle
		p.err = err
		return err
	}

	p.phase = PhaseSuccess
	p.msg = "Registered successfully. You can login now."
	p.nav = &Nav{Path: "/login", Replace: true, After: registerNavDelay}
	return nil
}

func (p *RegisterPage) Render(w io.Writer) {
	fmt.Fprintln(w, "Register")
	if p.err != nil {
		fmt.Fprintf(w, "Error: %v\n", p.err)
	}
	if p.msg != "" {
		fmt.Fprintln(w, p.msg)
	}
	fmt.Fprintf(w, "  name: %s\n  email: %s\n", p.Name, p.Email)
	if p.phase == PhaseSubmitting {
		fmt.Fprintln(w, "...")
	}
}
