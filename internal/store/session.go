package store

// Login establishes the demo session. Any non-empty email/password pair is
// accepted; there is no credential check. The installed profile is the fixed
// demo administrator with the supplied email.
func (s *Store) Login(email, password string) (User, bool) {
	if email == "" || password == "" {
		return User{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user := User{
		ID:    "USR-001",
		Name:  "Admin User",
		Email: email,
		Role:  "Administrator",
	}
	s.state.IsAuthenticated = true
	s.state.User = &user
	s.persistLocked()
	return user, true
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsAuthenticated = false
	s.state.User = nil
	s.persistLocked()
}

func (s *Store) CurrentUser() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsAuthenticated || s.state.User == nil {
		return User{}, false
	}
	return *s.state.User, true
}

// ToggleSidebar flips the persisted sidebar flag and returns the new value.
func (s *Store) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SidebarOpen = !s.state.SidebarOpen
	s.persistLocked()
	return s.state.SidebarOpen
}

func (s *Store) SidebarOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SidebarOpen
}
