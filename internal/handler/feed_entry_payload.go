package handler

import (
	"encoding/xml"
	"time"

	"feedstream/backend/internal/model"
	"feedstream/backend/internal/optional"
	"feedstream/backend/internal/service"
)

// feedEntryPayload is the wire form of a feed entry in both JSON and XML.
// On create the id is ignored.
type feedEntryPayload struct {
	XMLName     xml.Name   `json:"-" xml:"feedEntry"`
	ID          int64      `json:"id" xml:"id"`
	SenderName  *string    `json:"senderName,omitempty" xml:"senderName,omitempty"`
	FeedText    *string    `json:"feedText,omitempty" xml:"feedText,omitempty"`
	SenderEmail *string    `json:"senderEmail,omitempty" xml:"senderEmail,omitempty"`
	IsComment   bool       `json:"isComment" xml:"isComment"`
	Parent      *string    `json:"parent,omitempty" xml:"parent,omitempty"`
	TimeCreated *time.Time `json:"timeCreated,omitempty" xml:"timeCreated,omitempty"`
}

type feedEntryListPayload struct {
	XMLName xml.Name           `xml:"feedEntries"`
	Entries []feedEntryPayload `xml:"feedEntry"`
}

// feedEntryPatchPayload is the body of an update. Every field keeps track
// of whether it was sent.
type feedEntryPatchPayload struct {
	XMLName     xml.Name                  `json:"-" xml:"feedEntry"`
	SenderName  optional.Value[string]    `json:"senderName" xml:"senderName"`
	FeedText    optional.Value[string]    `json:"feedText" xml:"feedText"`
	SenderEmail optional.Value[string]    `json:"senderEmail" xml:"senderEmail"`
	IsComment   optional.Value[bool]      `json:"isComment" xml:"isComment"`
	Parent      optional.Value[string]    `json:"parent" xml:"parent"`
	TimeCreated optional.Value[time.Time] `json:"timeCreated" xml:"timeCreated"`
}

func toFeedEntryPayload(e model.FeedEntry) feedEntryPayload {
	return feedEntryPayload{
		ID:          e.ID,
		SenderName:  e.SenderName,
		FeedText:    e.FeedText,
		SenderEmail: e.SenderEmail,
		IsComment:   e.IsComment,
		Parent:      e.Parent,
		TimeCreated: utcPtr(e.TimeCreated),
	}
}

func toFeedEntryListPayload(entries []model.FeedEntry) []feedEntryPayload {
	out := make([]feedEntryPayload, 0, len(entries))
	for _, e := range entries {
		out = append(out, toFeedEntryPayload(e))
	}
	return out
}

func (p feedEntryPayload) toModel() model.FeedEntry {
	return model.FeedEntry{
		SenderName:  p.SenderName,
		SenderEmail: p.SenderEmail,
		FeedText:    p.FeedText,
		Parent:      p.Parent,
		IsComment:   p.IsComment,
		TimeCreated: p.TimeCreated,
	}
}

func (p feedEntryPatchPayload) toPatch() service.FeedEntryPatch {
	return service.FeedEntryPatch{
		SenderName:  p.SenderName,
		SenderEmail: p.SenderEmail,
		FeedText:    p.FeedText,
		Parent:      p.Parent,
		IsComment:   p.IsComment,
		TimeCreated: p.TimeCreated,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
