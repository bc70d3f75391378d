package admin

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the admin panel's working set in memory. The panel is a
// single-operator tool; nothing here needs durable storage yet.
type Store struct {
	mu          sync.RWMutex
	newsletters map[string]*Newsletter
	releases    map[string]*ContentRelease
	posts       map[string]*SocialPost
	accounts    map[string]*SocialAccount
}

// NewStore creates a store seeded with the default platform roster.
func NewStore() *Store {
	s := &Store{
		newsletters: make(map[string]*Newsletter),
		releases:    make(map[string]*ContentRelease),
		posts:       make(map[string]*SocialPost),
		accounts:    make(map[string]*SocialAccount),
	}
	for _, a := range defaultAccounts() {
		acct := a
		s.accounts[acct.ID] = &acct
	}
	return s
}

// CreateNewsletter stores a new newsletter. A send date schedules it;
// otherwise it stays a draft.
func (s *Store) CreateNewsletter(n Newsletter) *Newsletter {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	if n.Status == "" {
		if n.SendDate != "" {
			n.Status = NewsletterScheduled
		} else {
			n.Status = NewsletterDraft
		}
	}
	s.newsletters[n.ID] = &n
	out := n
	return &out
}

// UpdateNewsletter replaces the editable fields of an existing newsletter.
func (s *Store) UpdateNewsletter(id string, n Newsletter) (*Newsletter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.newsletters[id]
	if !ok {
		return nil, ErrNewsletterNotFound
	}
	existing.Subject = n.Subject
	existing.Content = n.Content
	existing.SendDate = n.SendDate
	if n.Status != "" {
		existing.Status = n.Status
	}
	out := *existing
	return &out, nil
}

// GetNewsletter fetches one newsletter.
func (s *Store) GetNewsletter(id string) (*Newsletter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.newsletters[id]
	if !ok {
		return nil, ErrNewsletterNotFound
	}
	out := *n
	return &out, nil
}

// ListNewsletters returns newsletters newest first.
func (s *Store) ListNewsletters() []*Newsletter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Newsletter, 0, len(s.newsletters))
	for _, n := range s.newsletters {
		copied := *n
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// DeleteNewsletter removes a newsletter.
func (s *Store) DeleteNewsletter(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.newsletters[id]; !ok {
		return ErrNewsletterNotFound
	}
	delete(s.newsletters, id)
	return nil
}

// MarkNewsletterSent flips a newsletter to sent and records the audience
// size.
func (s *Store) MarkNewsletterSent(id string, recipients int) (*Newsletter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.newsletters[id]
	if !ok {
		return nil, ErrNewsletterNotFound
	}
	n.Status = NewsletterSent
	n.Recipients = recipients
	if n.SendDate == "" {
		n.SendDate = time.Now().UTC().Format("2006-01-02")
	}
	out := *n
	return &out, nil
}

// CreateRelease stores a new content release.
func (s *Store) CreateRelease(r ContentRelease) *ContentRelease {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = uuid.NewString()
	if r.Status == "" {
		r.Status = ReleasePlanned
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	s.releases[r.ID] = &r
	out := r
	return &out
}

// UpdateRelease replaces an existing release's fields.
func (s *Store) UpdateRelease(id string, r ContentRelease) (*ContentRelease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.releases[id]
	if !ok {
		return nil, ErrReleaseNotFound
	}
	r.ID = id
	*existing = r
	out := r
	return &out, nil
}

// ListReleases returns releases by release date, most recent first.
func (s *Store) ListReleases() []*ContentRelease {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*ContentRelease, 0, len(s.releases))
	for _, r := range s.releases {
		copied := *r
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReleaseDate > out[j].ReleaseDate })
	return out
}

// DeleteRelease removes a content release.
func (s *Store) DeleteRelease(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.releases[id]; !ok {
		return ErrReleaseNotFound
	}
	delete(s.releases, id)
	return nil
}

// CreatePost stores a new social post.
func (s *Store) CreatePost(p SocialPost) *SocialPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	if p.Status == "" {
		if p.ScheduledDate != "" {
			p.Status = PostScheduled
		} else {
			p.Status = PostDraft
		}
	}
	s.posts[p.ID] = &p
	out := p
	return &out
}

// UpdatePost replaces an existing post's fields.
func (s *Store) UpdatePost(id string, p SocialPost) (*SocialPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	p.ID = id
	*existing = p
	out := p
	return &out, nil
}

// ListPosts returns posts by scheduled date and time ascending.
func (s *Store) ListPosts() []*SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*SocialPost, 0, len(s.posts))
	for _, p := range s.posts {
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledDate != out[j].ScheduledDate {
			return out[i].ScheduledDate < out[j].ScheduledDate
		}
		return out[i].ScheduledTime < out[j].ScheduledTime
	})
	return out
}

// DeletePost removes a social post.
func (s *Store) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}

// ListAccounts returns the platform roster in stable id order.
func (s *Store) ListAccounts() []*SocialAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*SocialAccount, 0, len(s.accounts))
	for _, a := range s.accounts {
		copied := *a
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ConnectAccount marks a platform account as connected under a username.
func (s *Store) ConnectAccount(id, username string) (*SocialAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	a.Connected = true
	a.Username = username
	out := *a
	return &out, nil
}

// DisconnectAccount clears a platform account's connection.
func (s *Store) DisconnectAccount(id string) (*SocialAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	a.Connected = false
	a.Username = ""
	out := *a
	return &out, nil
}
