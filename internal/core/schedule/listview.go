package schedule

import (
	"context"

	postEntity "clipcast/internal/core/scheduledpost"
	sessionPort "clipcast/internal/ports/session"
)

// ListItem is one row of the scheduled-posts list as the dashboard shows it.
type ListItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Platform string `json:"platform"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Status   string `json:"status"`
}

// ListView projects the store's collection for display and forwards delete
// intents. It owns no state of its own; a deleted row stays visible until the
// refreshed collection omits it.
type ListView struct {
	store *Store
}

func NewListView(store *Store) *ListView {
	return &ListView{store: store}
}

// Items renders ident's current cached collection.
func (v *ListView) Items(ident *sessionPort.Identity) []ListItem {
	_, posts := v.store.Snapshot(ident)

	items := make([]ListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, ListItem{
			ID:       p.ID.String(),
			Title:    truncateTitle(p.Content),
			Content:  p.Content,
			Platform: firstPlatform(p.Platforms),
			Date:     p.ScheduledFor.Format("2006-01-02"),
			Time:     p.ScheduledFor.Format("15:04"),
			Status:   p.Status,
		})
	}
	return items
}

// RequestDelete forwards straight to the store; no confirmation, no
// optimistic removal.
func (v *ListView) RequestDelete(ctx context.Context, ident *sessionPort.Identity, id string) error {
	return v.store.Delete(ctx, ident, id)
}

// truncateTitle derives the row title from the first 30 runes of content.
func truncateTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= 30 {
		return content
	}
	return string(runes[:30]) + "..."
}

// firstPlatform labels the row with its selected platform, or "multiple"
// when the selection is not a single platform.
func firstPlatform(ps postEntity.PlatformSet) string {
	selected := ps.Selected()
	if len(selected) == 1 {
		return selected[0]
	}
	return "multiple"
}
