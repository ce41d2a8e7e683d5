package account

// Session is the transient authenticated binding between a caller and one
// Account. It holds no state of its own: it is a read/write view onto the
// account record, mediated by the Service.
type Session struct {
	svc      *Service
	username string
	active   bool
}

func newSession(svc *Service, username string) *Session {
	return &Session{svc: svc, username: username, active: true}
}

// NewSession rebinds a session to an already-authenticated account, e.g.
// from verified API token claims.
func NewSession(svc *Service, username string) *Session {
	return newSession(svc, username)
}

func (s *Session) Username() string { return s.username }

// Account returns the current account record, or ErrUnauthenticated once
// the session was logged out.
func (s *Session) Account() (Account, error) {
	if s == nil || !s.active {
		return Account{}, ErrUnauthenticated
	}
	return s.svc.GetByUsername(s.username)
}

// UpgradeToPremium activates premium membership on the bound account.
func (s *Session) UpgradeToPremium(plan string) (Account, error) {
	if s == nil || !s.active {
		return Account{}, ErrUnauthenticated
	}
	return s.svc.UpgradeToPremium(s.username, plan)
}

// CancelPremiumRenewal disables auto-renewal on the bound account.
func (s *Session) CancelPremiumRenewal() (Account, error) {
	if s == nil || !s.active {
		return Account{}, ErrUnauthenticated
	}
	return s.svc.CancelPremiumRenewal(s.username)
}

// Logout discards the binding; the account record is not mutated.
func (s *Session) Logout() {
	if s != nil {
		s.active = false
	}
}
