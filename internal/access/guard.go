package access

import "github.com/MajhiMohit/fsd-16-project/internal/models"

// SessionState is the read-only view of the session the guard consults.
// *session.Store satisfies it.
type SessionState interface {
	Loading() bool
	IsAuthenticated() bool
	Role() models.Role
}

// Outcome is the terminal result of one guard evaluation.
type Outcome int

const (
	// OutcomeLoading means the session is still hydrating; show a neutral
	// indicator, neither the protected content nor a redirect.
	OutcomeLoading Outcome = iota
	// OutcomeAllow means the protected content may be rendered.
	OutcomeAllow
	// OutcomeRedirect means navigation must move to Decision.Target.
	OutcomeRedirect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeAllow:
		return "allow"
	case OutcomeRedirect:
		return "redirect"
	}
	return "unknown"
}

// Decision is the guard's verdict. Target is set only for OutcomeRedirect.
type Decision struct {
	Outcome Outcome
	Target  Route
}

// Check gates a protected view. allowed is the view's role allow-list; an
// empty list admits any authenticated user. fallback is where
// unauthenticated sessions are sent; pass "" for the login route.
//
// Evaluation order, first match wins:
//  1. session hydrating        → OutcomeLoading
//  2. unauthenticated          → redirect to fallback
//  3. role not in allow-list   → redirect to the role's own home
//  4. otherwise                → OutcomeAllow
func Check(s SessionState, allowed []models.Role, fallback Route) Decision {
	if s.Loading() {
		return Decision{Outcome: OutcomeLoading}
	}

	if !s.IsAuthenticated() {
		if fallback == "" {
			fallback = RouteLogin
		}
		return Decision{Outcome: OutcomeRedirect, Target: fallback}
	}

	if len(allowed) > 0 && !roleAllowed(s.Role(), allowed) {
		return Decision{Outcome: OutcomeRedirect, Target: HomeFor(s.Role())}
	}

	return Decision{Outcome: OutcomeAllow}
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
