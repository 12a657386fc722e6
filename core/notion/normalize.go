package notion

import (
	"fmt"
	"time"

	"event-sync/core/event"

	"github.com/jomei/notionapi"
)

// Normalize maps a raw Notion page into the canonical sync event shape.
// It is pure and total over well-formed pages; a page missing the title or
// date property fails with an error wrapping event.ErrMalformedRecord.
func Normalize(page *notionapi.Page, cfg Config) (event.SyncEvent, error) {
	title, err := titleOf(page, cfg.TitleProperty)
	if err != nil {
		return event.SyncEvent{}, err
	}

	start, end, err := datesOf(page, cfg.DateProperty)
	if err != nil {
		return event.SyncEvent{}, err
	}

	done := false
	if cb, ok := page.Properties[cfg.DoneProperty].(*notionapi.CheckboxProperty); ok {
		done = cb.Checkbox
	}

	var tags []string
	if ms, ok := page.Properties[cfg.TagsProperty].(*notionapi.MultiSelectProperty); ok {
		for _, opt := range ms.MultiSelect {
			if opt.Name != "" {
				tags = append(tags, opt.Name)
			}
		}
	}

	icon := ""
	if page.Icon != nil && page.Icon.Emoji != nil {
		icon = string(*page.Icon.Emoji)
	}

	return event.SyncEvent{
		IconEmoji: icon,
		Title:     title,
		Start:     start,
		End:       end,
		Done:      done,
		Tags:      event.NormalizeTags(tags),
	}, nil
}

// titleOf extracts the first rich-text segment of the title property.
func titleOf(page *notionapi.Page, property string) (string, error) {
	prop, ok := page.Properties[property].(*notionapi.TitleProperty)
	if !ok || len(prop.Title) == 0 {
		return "", fmt.Errorf("%w: missing title property %q", event.ErrMalformedRecord, property)
	}
	title := prop.Title[0].PlainText
	if title == "" {
		return "", fmt.Errorf("%w: empty title in property %q", event.ErrMalformedRecord, property)
	}
	return title, nil
}

// datesOf extracts the date range; the end defaults to the start when the
// page carries no end date.
func datesOf(page *notionapi.Page, property string) (time.Time, time.Time, error) {
	prop, ok := page.Properties[property].(*notionapi.DateProperty)
	if !ok || prop.Date == nil || prop.Date.Start == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: missing date property %q", event.ErrMalformedRecord, property)
	}

	start := time.Time(*prop.Date.Start)
	end := start
	if prop.Date.End != nil {
		end = time.Time(*prop.Date.End)
	}
	return start, end, nil
}
