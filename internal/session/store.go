// Package session implements the session store: the single source of truth
// for who is logged in and what they have wishlisted or bought, persisted
// across process restarts through the state store.
//
// Wishlist and purchases are deliberately NOT namespaced per user: logging
// out and back in as a different account sees the same lists. Single shared
// collector state, not per-account.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/MajhiMohit/fsd-16-project/internal/directory"
	"github.com/MajhiMohit/fsd-16-project/internal/logging"
	"github.com/MajhiMohit/fsd-16-project/internal/models"
	"github.com/MajhiMohit/fsd-16-project/internal/state"
	"github.com/google/uuid"
)

// Storage keys. One independent record per concern.
const (
	keyUser      = "gallery_user"
	keyWishlist  = "gallery_wishlist"
	keyPurchases = "gallery_purchases"
)

// ErrInvalidCredentials is returned for any failed login. It deliberately
// does not distinguish an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Registration validation errors.
var (
	ErrNameRequired          = errors.New("name is required")
	ErrPasswordTooShort      = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrDuplicateRegistration = errors.New("email already registered")
	ErrInvalidRole           = errors.New("unknown role")
)

// Options tune a Store at construction time.
type Options struct {
	// Verifier checks supplied passwords; nil means Plaintext.
	Verifier CredentialVerifier
	// AuthLatency is the simulated delay before Login and Register
	// complete. Zero disables it. The wait aborts when the context is
	// canceled.
	AuthLatency time.Duration
}

// Store owns the session state. Mutations persist to the state store and
// then notify subscribers; a failed write is logged and the in-memory state
// stays authoritative.
type Store struct {
	mu        sync.RWMutex
	user      *models.User
	wishlist  []int
	purchases []models.Purchase
	loading   bool

	hydrateOnce sync.Once
	subscribers []func()

	st       state.Store
	dir      *directory.Directory
	log      logging.Logger
	verifier CredentialVerifier
	latency  time.Duration

	// test seams
	now          func() time.Time
	newReceiptID func() string
}

// New builds a Store over the given state store and user directory. The
// store starts in the loading state until Hydrate runs.
func New(st state.Store, dir *directory.Directory, log logging.Logger, opts Options) *Store {
	v := opts.Verifier
	if v == nil {
		v = Plaintext{}
	}
	return &Store{
		loading:      true,
		st:           st,
		dir:          dir,
		log:          log,
		verifier:     v,
		latency:      opts.AuthLatency,
		now:          time.Now,
		newReceiptID: uuid.NewString,
	}
}

// Subscribe registers fn to run after every state change (hydration, login,
// logout, wishlist toggle, purchase). Callbacks run synchronously on the
// mutating call, outside the store's lock.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// Hydrate loads the persisted session records, read as one consistent
// snapshot. Each of the three records is independent: one that is absent or
// fails to parse leaves its in-memory field at the empty default without
// touching the others. The loading flag clears exactly once, whether or not
// anything was read; repeat calls are no-ops.
func (s *Store) Hydrate(ctx context.Context) {
	s.hydrateOnce.Do(func() {
		records, err := s.st.GetMany(ctx, keyUser, keyWishlist, keyPurchases)
		if err != nil {
			s.log.Warn(ctx, "failed to read stored state", "error", err)
		}

		s.mu.Lock()

		if raw := records[keyUser]; raw != nil {
			var u models.User
			if err := json.Unmarshal(raw, &u); err != nil {
				s.log.Warn(ctx, "discarding malformed stored user", "error", err)
			} else {
				s.user = &u
			}
		}

		if raw := records[keyWishlist]; raw != nil {
			var ids []int
			if err := json.Unmarshal(raw, &ids); err != nil {
				s.log.Warn(ctx, "discarding malformed stored wishlist", "error", err)
			} else {
				s.wishlist = ids
			}
		}

		if raw := records[keyPurchases]; raw != nil {
			var ps []models.Purchase
			if err := json.Unmarshal(raw, &ps); err != nil {
				s.log.Warn(ctx, "discarding malformed stored purchases", "error", err)
			} else {
				s.purchases = ps
			}
		}

		s.loading = false
		s.mu.Unlock()
		s.notify()
	})
}

// persist writes a record, logging and swallowing failures.
func (s *Store) persist(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error(ctx, "failed to encode state", "key", key, "error", err)
		return
	}
	if err := s.st.Set(ctx, key, raw); err != nil {
		s.log.Error(ctx, "failed to persist state", "key", key, "error", err)
	}
}

// wait blocks for the configured simulated latency, aborting early when the
// context is canceled.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login matches email and password against the user directory, both fields
// exact. On success the matched user becomes the current user, is
// persisted, and the matched role is returned. Any mismatch yields
// ErrInvalidCredentials and leaves the session unchanged.
func (s *Store) Login(ctx context.Context, email, password string) (models.Role, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}

	u, err := s.dir.FindByEmail(email)
	if err != nil || !s.verifier.Verify(u, password) {
		return "", ErrInvalidCredentials
	}

	s.setUser(ctx, u)
	return u.Role, nil
}

// RegisterParams carries the registration form fields.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Confirm  string
	Role     models.Role
}

// Register validates the form, appends the new user to the directory, and
// logs them straight in. The role defaults to visitor when empty.
func (s *Store) Register(ctx context.Context, p RegisterParams) (models.Role, error) {
	if p.Name == "" {
		return "", ErrNameRequired
	}
	if len(p.Password) < 6 {
		return "", ErrPasswordTooShort
	}
	if p.Password != p.Confirm {
		return "", ErrPasswordMismatch
	}
	if p.Role == "" {
		p.Role = models.RoleVisitor
	}
	if !p.Role.Valid() {
		return "", ErrInvalidRole
	}

	if err := s.wait(ctx); err != nil {
		return "", err
	}

	u, err := s.dir.Add(models.User{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
		Role:     p.Role,
	})
	if err != nil {
		if errors.Is(err, directory.ErrDuplicateEmail) {
			return "", ErrDuplicateRegistration
		}
		return "", err
	}

	s.setUser(ctx, u)
	return u.Role, nil
}

func (s *Store) setUser(ctx context.Context, u models.User) {
	s.mu.Lock()
	s.user = &u
	s.persist(ctx, keyUser, &u)
	s.mu.Unlock()
	s.notify()
}

// Logout clears the current user in memory and in durable storage. The
// wishlist and purchases are left untouched, in memory and on disk.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	if err := s.st.Delete(ctx, keyUser); err != nil {
		s.log.Error(ctx, "failed to clear stored user", "error", err)
	}
	s.mu.Unlock()
	s.notify()
}

// ToggleWishlist flips membership of artworkID in the wishlist, preserving
// insertion order for the remaining entries, and persists the result. The
// store does not check authentication; callers gate that.
func (s *Store) ToggleWishlist(ctx context.Context, artworkID int) {
	s.mu.Lock()
	found := false
	for i, id := range s.wishlist {
		if id == artworkID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		s.wishlist = append(s.wishlist, artworkID)
	}
	s.persist(ctx, keyWishlist, s.wishlist)
	s.mu.Unlock()
	s.notify()
}

// IsWishlisted reports current membership of artworkID. No side effects.
func (s *Store) IsWishlisted(artworkID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.wishlist {
		if id == artworkID {
			return true
		}
	}
	return false
}

// Wishlist returns the wishlisted artwork ids in insertion order.
func (s *Store) Wishlist() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int(nil), s.wishlist...)
}

// AddPurchase appends a purchase record snapshotting the artwork, with a
// fresh receipt id and timestamp, and persists the sequence. Purchases are
// append-only; the same artwork may be bought more than once.
func (s *Store) AddPurchase(ctx context.Context, artwork models.Artwork) models.Purchase {
	p := models.Purchase{
		Artwork:     artwork,
		ReceiptID:   s.newReceiptID(),
		PurchasedAt: s.now(),
	}

	s.mu.Lock()
	s.purchases = append(s.purchases, p)
	s.persist(ctx, keyPurchases, s.purchases)
	s.mu.Unlock()
	s.notify()
	return p
}

// Purchases returns the purchase records in acquisition order.
func (s *Store) Purchases() []models.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Purchase(nil), s.purchases...)
}

// Loading reports whether the store is still waiting for Hydrate.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// CurrentUser returns the logged-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Role returns the current user's role, or "" when unauthenticated.
func (s *Store) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) hasRole(r models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == r
}

func (s *Store) IsAdmin() bool   { return s.hasRole(models.RoleAdmin) }
func (s *Store) IsArtist() bool  { return s.hasRole(models.RoleArtist) }
func (s *Store) IsCurator() bool { return s.hasRole(models.RoleCurator) }
func (s *Store) IsVisitor() bool { return s.hasRole(models.RoleVisitor) }
