package model

import "time"

// FeedEntry is a single message in the feed. Comments are entries whose
// Parent refers to another entry; the reference is not enforced.
type FeedEntry struct {
	ID          int64
	SenderName  *string
	SenderEmail *string
	FeedText    *string
	Parent      *string
	IsComment   bool
	TimeCreated *time.Time
}
