// Package session holds the single bearer credential the client presents
// to the storefront API. The store is the only authority on the current
// token: the API client reads it before every request and pages never
// touch the token directly.
package session

import "sync"

// Store is the session credential holder. Login replaces the stored
// token, Current reports it, Logout removes it. A store holds at most
// one token at a time.
type Store interface {
	Login(token string) error
	Current() (string, bool)
	Logout() error
}

// MemStore keeps the credential in memory only. It backs tests and the
// STOREFRONT_SESSION_DB=:memory: mode.
type MemStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemStore) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.set
}

func (s *MemStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
