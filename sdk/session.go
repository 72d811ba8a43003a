package sdk

import (
	"context"
	"sync"
	"time"

	"github.com/etalab/catalogue-api/models"

	"github.com/ONSdigital/log.go/v2/log"
)

// DefaultRefreshDebounce is how long a session change must hold still before
// the organization's catalogue is refetched. Login flows set the token and
// the organization in quick succession; the debounce collapses that into one
// request.
const DefaultRefreshDebounce = 100 * time.Millisecond

// Session tracks the identity of the signed in user and keeps the extra
// field definitions of their organization's catalogue available. Any change
// of identity schedules a debounced catalogue refetch; clearing the session
// cancels the pending fetch and drops the cached catalogue.
type Session struct {
	client   *Client
	debounce time.Duration

	mu                sync.Mutex
	headers           Headers
	organizationSiret string
	catalog           *models.Catalog
	timer             *time.Timer
}

// NewSession creates a session bound to the given client, with the default
// refresh debounce.
func NewSession(client *Client) *Session {
	return &Session{
		client:   client,
		debounce: DefaultRefreshDebounce,
	}
}

// SetAccount records the signed in account and schedules a catalogue
// refetch. Calling it again before the debounce elapses restarts the timer.
func (s *Session) SetAccount(apiToken, organizationSiret string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.headers = Headers{APIToken: apiToken}
	s.organizationSiret = organizationSiret
	s.scheduleRefreshLocked()
}

// Clear tears the session down: the pending refetch is cancelled and the
// cached catalogue is dropped.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.headers = Headers{}
	s.organizationSiret = ""
	s.catalog = nil
}

// Catalog returns the last fetched catalogue for the session's organization.
// The second return is false while no fetch has completed yet.
func (s *Session) Catalog() (models.Catalog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog == nil {
		return models.Catalog{}, false
	}
	return *s.catalog, true
}

// scheduleRefreshLocked restarts the debounce timer. Callers hold s.mu.
func (s *Session) scheduleRefreshLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.refresh)
}

// refresh fetches the catalogue for the current identity. Two overlapping
// refreshes are last write wins: whichever response lands second is kept,
// whether or not it was requested second.
func (s *Session) refresh() {
	s.mu.Lock()
	headers := s.headers
	organizationSiret := s.organizationSiret
	s.mu.Unlock()

	if organizationSiret == "" {
		return
	}

	ctx := context.Background()
	catalog, err := s.client.GetCatalog(ctx, headers, organizationSiret)
	if err != nil {
		log.Error(ctx, "failed to refresh session catalog", err, log.Data{"organization_siret": organizationSiret})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// the session may have been cleared or switched while the fetch ran
	if s.organizationSiret != organizationSiret {
		return
	}
	s.catalog = &catalog
}
