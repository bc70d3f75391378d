package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterCRUD(t *testing.T) {
	s := NewStore()

	draft := s.CreateNewsletter(Newsletter{Subject: "Welcome to daymaker2day!", Content: "Get exclusive access..."})
	assert.Equal(t, NewsletterDraft, draft.Status)

	scheduled := s.CreateNewsletter(Newsletter{Subject: "December drops", Content: "...", SendDate: "2026-12-01"})
	assert.Equal(t, NewsletterScheduled, scheduled.Status)

	updated, err := s.UpdateNewsletter(draft.ID, Newsletter{Subject: "Welcome!", Content: "updated"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome!", updated.Subject)

	all := s.ListNewsletters()
	assert.Len(t, all, 2)

	require.NoError(t, s.DeleteNewsletter(draft.ID))
	assert.ErrorIs(t, s.DeleteNewsletter(draft.ID), ErrNewsletterNotFound)
}

func TestMarkNewsletterSent(t *testing.T) {
	s := NewStore()
	n := s.CreateNewsletter(Newsletter{Subject: "hello", Content: "..."})

	sent, err := s.MarkNewsletterSent(n.ID, 245)
	require.NoError(t, err)
	assert.Equal(t, NewsletterSent, sent.Status)
	assert.Equal(t, 245, sent.Recipients)
	assert.NotEmpty(t, sent.SendDate)
}

func TestReleaseCRUDAndOrdering(t *testing.T) {
	s := NewStore()

	early := s.CreateRelease(ContentRelease{Title: "Old feature", ReleaseDate: "2026-01-01", Category: "Feature"})
	assert.Equal(t, ReleasePlanned, early.Status)
	assert.Equal(t, PriorityMedium, early.Priority)

	late := s.CreateRelease(ContentRelease{Title: "AI Logo Remix", ReleaseDate: "2026-12-01", Category: "Feature", Priority: PriorityHigh})

	list := s.ListReleases()
	require.Len(t, list, 2)
	assert.Equal(t, late.ID, list[0].ID)

	updated, err := s.UpdateRelease(early.ID, ContentRelease{Title: "Old feature", ReleaseDate: "2026-01-01", Status: ReleaseReleased})
	require.NoError(t, err)
	assert.Equal(t, ReleaseReleased, updated.Status)

	require.NoError(t, s.DeleteRelease(early.ID))
	_, err = s.UpdateRelease(early.ID, ContentRelease{})
	assert.ErrorIs(t, err, ErrReleaseNotFound)
}

func TestSocialPostCRUDAndOrdering(t *testing.T) {
	s := NewStore()

	p1 := s.CreatePost(SocialPost{Content: "morning post", ScheduledDate: "2026-09-01", ScheduledTime: "09:00", Platforms: []string{"facebook"}})
	assert.Equal(t, PostScheduled, p1.Status)

	p2 := s.CreatePost(SocialPost{Content: "no date yet"})
	assert.Equal(t, PostDraft, p2.Status)

	s.CreatePost(SocialPost{Content: "earlier", ScheduledDate: "2026-08-30", ScheduledTime: "18:00"})

	list := s.ListPosts()
	require.Len(t, list, 3)
	assert.Equal(t, "no date yet", list[0].Content) // empty date sorts first
	assert.Equal(t, "earlier", list[1].Content)

	updated, err := s.UpdatePost(p1.ID, SocialPost{Content: "morning post", Status: PostPublished})
	require.NoError(t, err)
	assert.Equal(t, PostPublished, updated.Status)

	require.NoError(t, s.DeletePost(p1.ID))
	assert.ErrorIs(t, s.DeletePost(p1.ID), ErrPostNotFound)
}

func TestSocialAccountConnectDisconnect(t *testing.T) {
	s := NewStore()

	accounts := s.ListAccounts()
	require.Len(t, accounts, 16)
	for _, a := range accounts {
		assert.False(t, a.Connected)
	}

	connected, err := s.ConnectAccount("bluesky", "daymaker2day.bsky.social")
	require.NoError(t, err)
	assert.True(t, connected.Connected)
	assert.Equal(t, "daymaker2day.bsky.social", connected.Username)

	disconnected, err := s.DisconnectAccount("bluesky")
	require.NoError(t, err)
	assert.False(t, disconnected.Connected)
	assert.Empty(t, disconnected.Username)

	_, err = s.ConnectAccount("myspace", "tom")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
