package service

import (
	"time"

	"feedstream/backend/internal/model"
	"feedstream/backend/internal/optional"
)

// FeedEntryPatch describes a partial update. Unset fields are left alone,
// explicit nulls clear the field, values overwrite it.
type FeedEntryPatch struct {
	SenderName  optional.Value[string]
	SenderEmail optional.Value[string]
	FeedText    optional.Value[string]
	Parent      optional.Value[string]
	IsComment   optional.Value[bool]
	TimeCreated optional.Value[time.Time]
}

// IsEmpty reports whether the patch would change nothing.
func (p FeedEntryPatch) IsEmpty() bool {
	return !p.SenderName.IsSet() &&
		!p.SenderEmail.IsSet() &&
		!p.FeedText.IsSet() &&
		!p.Parent.IsSet() &&
		!p.IsComment.IsSet() &&
		!p.TimeCreated.IsSet()
}

// Apply merges the patch into entry. The id is never touched.
func (p FeedEntryPatch) Apply(entry *model.FeedEntry) {
	applyString(&entry.SenderName, p.SenderName)
	applyString(&entry.SenderEmail, p.SenderEmail)
	applyString(&entry.FeedText, p.FeedText)
	applyString(&entry.Parent, p.Parent)

	// is_comment is NOT NULL, so an explicit null is ignored.
	if isComment, ok := p.IsComment.Get(); ok {
		entry.IsComment = isComment
	}

	if p.TimeCreated.IsSet() {
		entry.TimeCreated = p.TimeCreated.Ptr()
	}
}

func applyString(field **string, v optional.Value[string]) {
	if v.IsSet() {
		*field = v.Ptr()
	}
}
