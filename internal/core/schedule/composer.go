package schedule

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	postEntity "clipcast/internal/core/scheduledpost"
	sessionPort "clipcast/internal/ports/session"
)

var (
	ErrDateRequired = errors.New("date required")
	ErrInvalidClock = errors.New("time must be HH:MM")
)

// Composer defaults, matching the schedule form.
const (
	DefaultContent = "New Video Post"
	DefaultClock   = "12:00"
)

// Composer collects the four schedule-form fields and turns them into a
// single submission against the store.
type Composer struct {
	store *Store

	platform string
	content  string
	date     *time.Time
	clock    string
}

func NewComposer(store *Store) *Composer {
	c := &Composer{store: store}
	c.Reset()
	return c
}

// Reset restores all fields to their defaults.
func (c *Composer) Reset() {
	c.platform = postEntity.AllPlatforms[0]
	c.content = DefaultContent
	c.date = nil
	c.clock = DefaultClock
}

// SelectPlatform picks the single target platform for the submission.
func (c *Composer) SelectPlatform(name string) error {
	if !postEntity.ValidPlatform(name) {
		return fmt.Errorf("unknown platform: %s", name)
	}
	c.platform = name
	return nil
}

func (c *Composer) SetContent(content string) { c.content = content }

func (c *Composer) SetDate(date time.Time) { c.date = &date }

func (c *Composer) SetClock(clock string) { c.clock = clock }

// Submit validates the fields, composes the schedule timestamp from the
// selected date and time-of-day, and creates the post through the store.
// Fields reset to defaults only when the submission succeeds.
func (c *Composer) Submit(ctx context.Context, ident *sessionPort.Identity) (*postEntity.ScheduledPost, error) {
	if c.date == nil {
		return nil, ErrDateRequired
	}

	scheduledFor, err := ComposeAt(*c.date, c.clock)
	if err != nil {
		return nil, err
	}

	platforms := postEntity.PlatformSet{c.platform: true}

	created, err := c.store.Create(ctx, ident, c.content, scheduledFor, platforms)
	if err != nil {
		return nil, err
	}

	c.Reset()
	return created, nil
}

// ComposeAt overlays a 24-hour HH:MM time-of-day onto a calendar date.
func ComposeAt(date time.Time, clock string) (time.Time, error) {
	hour, minute, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// parseClock parses a 24-hour HH:MM string. Out-of-range values are rejected
// rather than wrapped into the next day.
func parseClock(clock string) (hour, minute int, err error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidClock
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrInvalidClock
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrInvalidClock
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidClock
	}
	return hour, minute, nil
}
