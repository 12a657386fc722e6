package notion

import (
	"context"
	"errors"
	"fmt"

	"event-sync/core/event"

	"github.com/jomei/notionapi"
	"go.uber.org/zap"
)

// placeholderIcon marks pages created by the sync; the calendar origin
// carries no icon concept, so pushed pages all get the same one.
const placeholderIcon = "❓"

// Source adapts the Notion database origin to the reconcile.DatabaseSource
// interface.
type Source struct {
	api    API
	cfg    Config
	logger *zap.Logger
}

// NewSource creates a database source over the given API.
func NewSource(api API, cfg Config, logger *zap.Logger) *Source {
	return &Source{
		api:    api,
		cfg:    cfg,
		logger: logger,
	}
}

// FetchOpenEvents returns all events whose Done checkbox is unchecked and
// whose date property is set, normalized into canonical sync events.
// Malformed pages are skipped and logged; pagination is followed to the end.
func (s *Source) FetchOpenEvents(ctx context.Context) ([]event.SyncEvent, error) {
	req := &notionapi.DatabaseQueryRequest{
		Filter: notionapi.AndCompoundFilter{
			notionapi.PropertyFilter{
				Property: s.cfg.DoneProperty,
				// Equals:false would be dropped by omitempty, so the
				// negated condition is used instead.
				Checkbox: &notionapi.CheckboxFilterCondition{DoesNotEqual: true},
			},
			notionapi.PropertyFilter{
				Property: s.cfg.DateProperty,
				Date:     &notionapi.DateFilterCondition{IsNotEmpty: true},
			},
		},
	}

	events := []event.SyncEvent{}
	for {
		resp, err := s.api.QueryDatabase(ctx, notionapi.DatabaseID(s.cfg.DatabaseID), req)
		if err != nil {
			return nil, fmt.Errorf("query database: %w", err)
		}

		for i := range resp.Results {
			ev, err := Normalize(&resp.Results[i], s.cfg)
			if err != nil {
				if errors.Is(err, event.ErrMalformedRecord) {
					s.logger.Warn("Skipping malformed database record",
						zap.String("page_id", string(resp.Results[i].ID)),
						zap.Error(err),
					)
					continue
				}
				return nil, err
			}
			events = append(events, ev)
		}

		if !resp.HasMore {
			break
		}
		req.StartCursor = resp.NextCursor
	}

	return events, nil
}

// CreateEvent re-serializes the canonical event into the Notion page schema
// (title rich text, checkbox, date range, multi-select tags, placeholder
// icon) and creates it in the configured database.
func (s *Source) CreateEvent(ctx context.Context, ev event.SyncEvent) error {
	start := notionapi.Date(ev.Start)
	end := notionapi.Date(ev.End)

	options := make([]notionapi.Option, 0, len(ev.Tags))
	for _, tag := range ev.Tags {
		options = append(options, notionapi.Option{Name: tag})
	}

	emoji := notionapi.Emoji(placeholderIcon)
	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(s.cfg.DatabaseID),
		},
		Icon: &notionapi.Icon{Type: "emoji", Emoji: &emoji},
		Properties: notionapi.Properties{
			s.cfg.TitleProperty: notionapi.TitleProperty{
				Title: []notionapi.RichText{
					{Text: &notionapi.Text{Content: ev.Title}},
				},
			},
			s.cfg.DoneProperty: notionapi.CheckboxProperty{Checkbox: ev.Done},
			s.cfg.DateProperty: notionapi.DateProperty{
				Date: &notionapi.DateObject{Start: &start, End: &end},
			},
			s.cfg.TagsProperty: notionapi.MultiSelectProperty{MultiSelect: options},
		},
	}

	if _, err := s.api.CreatePage(ctx, req); err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	return nil
}
