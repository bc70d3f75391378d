package admin

import (
	"errors"
	"time"
)

var (
	ErrNewsletterNotFound = errors.New("newsletter not found")
	ErrReleaseNotFound    = errors.New("content release not found")
	ErrPostNotFound       = errors.New("social post not found")
	ErrAccountNotFound    = errors.New("social account not found")
)

// NewsletterStatus is a newsletter's lifecycle state.
type NewsletterStatus string

const (
	NewsletterDraft     NewsletterStatus = "draft"
	NewsletterScheduled NewsletterStatus = "scheduled"
	NewsletterSent      NewsletterStatus = "sent"
)

// Newsletter is an email campaign managed from the admin dashboard.
type Newsletter struct {
	ID         string           `json:"id"`
	Subject    string           `json:"subject"`
	Content    string           `json:"content"`
	Recipients int              `json:"recipients"`
	Status     NewsletterStatus `json:"status"`
	SendDate   string           `json:"send_date,omitempty"` // YYYY-MM-DD
	CreatedAt  time.Time        `json:"created_at"`
}

// ReleaseStatus is a content release's progress state.
type ReleaseStatus string

const (
	ReleasePlanned    ReleaseStatus = "planned"
	ReleaseInProgress ReleaseStatus = "in-progress"
	ReleaseReleased   ReleaseStatus = "released"
)

// ReleasePriority ranks a content release.
type ReleasePriority string

const (
	PriorityLow    ReleasePriority = "low"
	PriorityMedium ReleasePriority = "medium"
	PriorityHigh   ReleasePriority = "high"
)

// ContentRelease is a planned feature or content drop on the admin calendar.
type ContentRelease struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ReleaseDate string          `json:"release_date"` // YYYY-MM-DD
	Category    string          `json:"category"`
	Status      ReleaseStatus   `json:"status"`
	Priority    ReleasePriority `json:"priority"`
}

// PostStatus is a social post's publishing state.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
	PostFailed    PostStatus = "failed"
)

// SocialPost is a cross-platform post scheduled from the admin portal.
type SocialPost struct {
	ID            string     `json:"id"`
	Content       string     `json:"content"`
	MediaURL      string     `json:"media_url,omitempty"`
	ScheduledDate string     `json:"scheduled_date"` // YYYY-MM-DD
	ScheduledTime string     `json:"scheduled_time"` // HH:MM
	Platforms     []string   `json:"platforms"`
	Hashtags      []string   `json:"hashtags"`
	Status        PostStatus `json:"status"`
}

// SocialAccount is the connect/disconnect bookkeeping for one platform.
type SocialAccount struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	Username  string `json:"username,omitempty"`
	Connected bool   `json:"connected"`
	AuthURL   string `json:"auth_url"`
}

// defaultAccounts is the platform roster the portal starts with, all
// disconnected.
func defaultAccounts() []SocialAccount {
	return []SocialAccount{
		{ID: "facebook", Platform: "Facebook", AuthURL: "https://www.facebook.com/login"},
		{ID: "instagram", Platform: "Instagram", AuthURL: "https://www.instagram.com/accounts/login"},
		{ID: "threads", Platform: "Threads", AuthURL: "https://www.threads.net/login"},
		{ID: "nextdoor", Platform: "Nextdoor", AuthURL: "https://nextdoor.com/login"},
		{ID: "twitter", Platform: "X (Twitter)", AuthURL: "https://twitter.com/i/flow/login"},
		{ID: "linkedin", Platform: "LinkedIn", AuthURL: "https://www.linkedin.com/login"},
		{ID: "tiktok", Platform: "TikTok", AuthURL: "https://www.tiktok.com/login"},
		{ID: "youtube", Platform: "YouTube", AuthURL: "https://accounts.google.com/signin"},
		{ID: "pinterest", Platform: "Pinterest", AuthURL: "https://www.pinterest.com/login"},
		{ID: "snapchat", Platform: "Snapchat", AuthURL: "https://accounts.snapchat.com/accounts/login"},
		{ID: "whatsapp", Platform: "WhatsApp Business", AuthURL: "https://business.whatsapp.com/"},
		{ID: "telegram", Platform: "Telegram", AuthURL: "https://web.telegram.org/"},
		{ID: "reddit", Platform: "Reddit", AuthURL: "https://www.reddit.com/login"},
		{ID: "tumblr", Platform: "Tumblr", AuthURL: "https://www.tumblr.com/login"},
		{ID: "mastodon", Platform: "Mastodon", AuthURL: "https://mastodon.social/auth/sign_in"},
		{ID: "bluesky", Platform: "Bluesky", AuthURL: "https://bsky.app/"},
	}
}
