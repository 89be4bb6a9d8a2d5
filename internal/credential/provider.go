package credential

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hblboard/hblboard/internal/logger"
)

var (
	// ErrNotFound means no credential blob is persisted.
	ErrNotFound = errors.New("credential: not found")
	// ErrMalformed means the persisted blob is unparsable or incomplete.
	// The provider reacts by clearing it and forcing re-authentication.
	ErrMalformed = errors.New("credential: malformed stored value")
)

// Credential is the persisted blob. The token is opaque with an unknown
// expiry; expiry only ever manifests as authentication failures from the
// classroom API.
type Credential struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// Store is the persistence surface the provider needs.
type Store interface {
	Save(ctx context.Context, cred *Credential) error
	Load(ctx context.Context) (*Credential, error)
	Clear(ctx context.Context) error
}

// Provider is the explicit capability object handed to whoever needs the
// current credential, replacing ambient global state. Constructed once at
// process start; change handlers fire on every Set and Clear.
type Provider struct {
	store  Store
	logger logger.Logger

	mu       sync.RWMutex
	current  *Credential
	handlers []func()
}

// NewProvider creates a provider over store. Call Load before serving.
func NewProvider(store Store, log logger.Logger) *Provider {
	return &Provider{
		store:  store,
		logger: log,
	}
}

// Load bootstraps the in-memory credential from the store, once at startup.
// A malformed blob is cleared and startup continues unauthenticated; no
// outcome here is fatal.
func (p *Provider) Load(ctx context.Context) {
	cred, err := p.store.Load(ctx)
	switch {
	case err == nil:
		p.mu.Lock()
		p.current = cred
		p.mu.Unlock()
		p.logger.Info("restored persisted credential",
			logger.String("saved_at", cred.SavedAt.Format(time.RFC3339)))
	case errors.Is(err, ErrNotFound):
		p.logger.Info("no persisted credential, starting unauthenticated")
	case errors.Is(err, ErrMalformed):
		p.logger.Warn("persisted credential is malformed, clearing it",
			logger.Error(err))
		if clearErr := p.store.Clear(ctx); clearErr != nil {
			p.logger.Warn("failed to clear malformed credential",
				logger.Error(clearErr))
		}
	default:
		p.logger.Warn("failed to load persisted credential, starting unauthenticated",
			logger.Error(err))
	}
}

// Current returns the bearer token, or "" when unauthenticated.
func (p *Provider) Current() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return ""
	}
	return p.current.Token
}

// Set stores a new credential and notifies change handlers.
func (p *Provider) Set(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("credential: empty token")
	}

	cred := &Credential{Token: token, SavedAt: time.Now()}
	if err := p.store.Save(ctx, cred); err != nil {
		return err
	}

	p.mu.Lock()
	p.current = cred
	p.mu.Unlock()

	p.notify()
	return nil
}

// Clear signs out: the persisted blob is removed and handlers are notified
// so the feed can drop to fallback mode on the next cycle.
func (p *Provider) Clear(ctx context.Context) error {
	if err := p.store.Clear(ctx); err != nil {
		return err
	}

	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	p.notify()
	return nil
}

// OnChange registers fn to run after every Set and Clear. Register before
// serving; registration is not synchronized against notification.
func (p *Provider) OnChange(fn func()) {
	p.handlers = append(p.handlers, fn)
}

func (p *Provider) notify() {
	for _, fn := range p.handlers {
		fn()
	}
}
