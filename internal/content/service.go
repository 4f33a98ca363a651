package content

import (
	"context"
	"io/fs"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nailaham15/nailah-s-portfolio/internal/requestctx"
)

// Service hands out the current content library.
type Service interface {
	Library(ctx context.Context) (*Library, error)
}

type staticService struct {
	lib *Library
}

// NewStaticService serves a library loaded once at start-up.
func NewStaticService(lib *Library) Service {
	return &staticService{lib: lib}
}

func (s *staticService) Library(context.Context) (*Library, error) {
	return s.lib, nil
}

// ReloadingService re-reads content from disk once the TTL has elapsed. It is
// used in dev mode so edits to the YAML files show up without a restart.
type ReloadingService struct {
	fsys fs.FS
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	lib     *Library
	expires time.Time
}

// NewReloadingService loads fsys immediately and fails if the content is invalid.
func NewReloadingService(fsys fs.FS, ttl time.Duration) (*ReloadingService, error) {
	if ttl <= 0 {
		ttl = time.Minute
	}
	s := &ReloadingService{fsys: fsys, ttl: ttl, now: time.Now}
	lib, err := Load(fsys)
	if err != nil {
		return nil, err
	}
	s.lib = lib
	s.expires = s.now().Add(ttl)
	return s, nil
}

// Library returns the cached library, reloading it when expired. A failed
// reload keeps serving the previous library.
func (s *ReloadingService) Library(ctx context.Context) (*Library, error) {
	s.mu.RLock()
	lib, expires := s.lib, s.expires
	s.mu.RUnlock()
	if s.now().Before(expires) {
		return lib, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.now().Before(s.expires) {
		return s.lib, nil
	}
	s.expires = s.now().Add(s.ttl)
	fresh, err := Load(s.fsys)
	if err != nil {
		requestctx.Logger(ctx).Warn("content reload failed; serving previous content", zap.Error(err))
		return s.lib, nil
	}
	s.lib = fresh
	return fresh, nil
}
