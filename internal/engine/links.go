package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"watchlog/internal/catalog"
	"watchlog/internal/logging"
	"watchlog/internal/sheet"
	"watchlog/internal/videocache"
)

// Attribute column labels, matching the workbook headers.
const (
	columnDuration  = "Duration"
	columnPublished = "Published"
	columnAuthor    = "Author"
	columnExist     = "Exist"
)

// existSentinel marks rows whose referenced video could not be fully
// resolved.
const existSentinel = "non-existent"

// publishedLayout is the workbook's publish-timestamp format.
const publishedLayout = "15:04:05 02-01-2006"

// attributeOrder fixes the cell write-back order.
var attributeOrder = []string{columnDuration, columnPublished, columnAuthor, columnExist}

// Links scans the resolved row window for incomplete candidate links,
// resolves each through the catalog (or cache), merges the attributes into
// placeholder cells, and returns the accumulated {link: attributes} mapping.
// When the same link recurs in the window the later row wins in the mapping;
// the worksheet itself stays keyed by row.
func (e *Engine) Links(ctx context.Context, window Range) (result map[string]map[string]any, err error) {
	defer e.saveOnExit(&err)

	if e.catalog == nil {
		return nil, wrap(ErrConfiguration, "links", "catalog", "no catalog client configured", nil)
	}

	cols, err := e.resolveRecordColumns()
	if err != nil {
		return nil, err
	}

	start, stop, err := e.resolveRange(window)
	if err != nil {
		return nil, err
	}

	e.logger.Info("scanning links",
		logging.Int("start", start), logging.Int("stop", stop))

	attrColumns := make(map[string]int, len(attributeOrder))
	result = make(map[string]map[string]any)

	for row := start; row < stop; row++ {
		value, err := e.src.Value(row, linkColumn)
		if err != nil {
			return result, err
		}
		if !e.isCandidateLink(value) {
			continue
		}
		link := value.(string)

		incomplete, err := e.isIncompleteRecord(row, cols)
		if err != nil {
			return result, err
		}
		if !incomplete {
			continue
		}

		attrs, err := e.resolveLink(ctx, link)
		if err != nil {
			return result, wrap(ErrResolution, "links", "resolve",
				fmt.Sprintf("row %d", row), err)
		}

		if err := e.mergeAttributes(row, attrs, attrColumns); err != nil {
			return result, err
		}

		result[link] = attrs
		e.logger.Debug("link resolved",
			logging.Int(logging.FieldRow, row), logging.String(logging.FieldLink, link))
	}

	return result, nil
}

// mergeAttributes writes every non-empty attribute into its column, but only
// into cells still holding the placeholder. Re-running enrichment over rows
// already enriched is therefore a no-op for those cells.
func (e *Engine) mergeAttributes(row int, attrs map[string]any, attrColumns map[string]int) error {
	for _, name := range attributeOrder {
		value := attrs[name]
		if !truthy(value) {
			continue
		}

		col, known := attrColumns[name]
		if !known {
			resolved, err := e.columnIndex(name)
			if err != nil {
				return err
			}
			if resolved == 0 {
				return wrap(ErrConfiguration, "links", "merge",
					fmt.Sprintf("column %q not found", name), nil)
			}
			attrColumns[name] = resolved
			col = resolved
		}

		current, err := e.src.Value(row, col)
		if err != nil {
			return err
		}
		if sheet.StateOf(current) != sheet.Pending {
			continue
		}
		if err := e.src.SetValue(row, col, value); err != nil {
			return err
		}
	}
	return nil
}

// resolveLink extracts the video ID and resolves the attribute set, going
// through the cache when one is wired.
func (e *Engine) resolveLink(ctx context.Context, link string) (map[string]any, error) {
	idx := strings.Index(link, e.prefix)
	videoID := link[idx+len(e.prefix):]
	if videoID == "" {
		return nil, fmt.Errorf("link %q carries no video id", link)
	}

	if e.cache != nil {
		if entry, found, err := e.cache.Lookup(ctx, videoID); err != nil {
			e.logger.Warn("cache lookup failed", logging.Error(err))
		} else if found {
			return attributesFromCache(entry), nil
		}
	}

	attrs, err := e.fetchAttributes(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Store(ctx, cacheEntry(videoID, attrs)); err != nil {
			e.logger.Warn("cache store failed", logging.Error(err))
		}
	}
	return attrs, nil
}

// fetchAttributes performs the two facet lookups and assembles the attribute
// set. Empty catalog responses are the valid not-found outcome: attributes
// stay null and the sentinel is raised.
func (e *Engine) fetchAttributes(ctx context.Context, videoID string) (map[string]any, error) {
	details, err := e.catalog.VideoDetails(ctx, videoID, catalog.FacetContentDetails)
	if err != nil {
		return nil, err
	}
	snippet, err := e.catalog.VideoDetails(ctx, videoID, catalog.FacetSnippet)
	if err != nil {
		return nil, err
	}

	attrs := emptyAttributes()

	if len(details.Items) > 0 && details.Items[0].ContentDetails != nil {
		minutes, err := ParseDurationMinutes(details.Items[0].ContentDetails.Duration)
		if err != nil {
			return nil, err
		}
		attrs[columnDuration] = minutes
	}

	if len(snippet.Items) > 0 && snippet.Items[0].Snippet != nil {
		payload := snippet.Items[0].Snippet
		if payload.PublishedAt != "" {
			published, err := time.Parse(time.RFC3339, payload.PublishedAt)
			if err != nil {
				return nil, fmt.Errorf("parse publish timestamp %q: %w", payload.PublishedAt, err)
			}
			attrs[columnPublished] = published.Format(publishedLayout)
		}
		if payload.ChannelTitle != "" {
			attrs[columnAuthor] = payload.ChannelTitle
		}
	}

	markExist(attrs)
	return attrs, nil
}

func emptyAttributes() map[string]any {
	return map[string]any{
		columnDuration:  nil,
		columnPublished: nil,
		columnAuthor:    nil,
		columnExist:     nil,
	}
}

// markExist raises the sentinel when any attribute failed to resolve.
func markExist(attrs map[string]any) {
	if !truthy(attrs[columnDuration]) || !truthy(attrs[columnPublished]) || !truthy(attrs[columnAuthor]) {
		attrs[columnExist] = existSentinel
	}
}

func attributesFromCache(entry videocache.Entry) map[string]any {
	attrs := emptyAttributes()
	if entry.DurationMinutes != nil {
		attrs[columnDuration] = *entry.DurationMinutes
	}
	if entry.Published != "" {
		attrs[columnPublished] = entry.Published
	}
	if entry.Author != "" {
		attrs[columnAuthor] = entry.Author
	}
	markExist(attrs)
	return attrs
}

func cacheEntry(videoID string, attrs map[string]any) videocache.Entry {
	entry := videocache.Entry{VideoID: videoID}
	if minutes, ok := attrs[columnDuration].(float64); ok {
		entry.DurationMinutes = &minutes
	}
	if published, ok := attrs[columnPublished].(string); ok {
		entry.Published = published
	}
	if author, ok := attrs[columnAuthor].(string); ok {
		entry.Author = author
	}
	return entry
}

// truthy mirrors the attribute semantics: nil, empty strings, and a zero
// duration all count as unresolved.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}
