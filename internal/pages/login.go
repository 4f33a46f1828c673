package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/akulagin/storefront/internal/session"
)

// LoginPage exchanges email/password for a bearer token and hands it to
// the session store. On failure the fields keep their values for
// correction and the store is left untouched.
type LoginPage struct {
	backend Backend
	session session.Store

	Email    string
	Password string

	phase Phase
	err   error
	nav   *Nav
}

func NewLoginPage(b Backend, s session.Store) *LoginPage {
	return &LoginPage{
		backend:  b,
		session:  s,
		Email:    "user@example.com",
		Password: "password",
	}
}

func (p *LoginPage) Route() string { return "/login" }

func (p *LoginPage) Phase() Phase { return p.phase }

func (p *LoginPage) Nav() *Nav { return p.nav }

func (p *LoginPage) Submit(ctx context.Context) error {
	p.phase = PhaseSubmitting
	p.err = nil
	p.nav = nil

	token, err := p.backend.Login(ctx, p.Email, p.Password)
	if ctx.Err() != nil {
		p.phase = PhaseIdle
		return ctx.Err()
	}
	if err != nil {
		p.phase = PhaseIdle
		p.err = err
		return err
	}

	if err := p.session.Login(token); err != nil {
		p.phase = PhaseIdle
		p.err = err
		return err
	}

	p.phase = PhaseSuccess
	// Replace history so Back does not return to the login form.
	p.nav = &Nav{Path: "/products", Replace: true}
	return nil
}

func (p *LoginPage) Render(w io.Writer) {
	fmt.Fprintln(w, "Login")
	if p.err != nil {
		fmt.Fprintf(w, "Error: %v\n", p.err)
	}
	fmt.Fprintf(w, "  email: %s\n", p.Email)
	if p.phase == PhaseSubmitting {
		fmt.Fprintln(w, "...")
	}
}
