package services

import (
	"context"
	"sort"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/hajruuudin/life-line/config"
)

// GoogleCalendarService manages the dedicated app calendar: one per user,
// found or created by its fixed name.
type GoogleCalendarService struct {
	tokens       *GoogleTokenService
	calendarName string
}

func NewGoogleCalendarService(cfg *config.Config, tokens *GoogleTokenService) *GoogleCalendarService {
	return &GoogleCalendarService{
		tokens:       tokens,
		calendarName: cfg.CalendarName,
	}
}

// EventSummary is the trimmed event shape returned to the frontend.
type EventSummary struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// UpcomingDay groups a day's events, capped at the per-day maximum.
type UpcomingDay struct {
	Date   string         `json:"date"`
	Events []EventSummary `json:"events"`
}

func (s *GoogleCalendarService) client(ctx context.Context, userID uint) (*calendar.Service, error) {
	ts, err := s.tokens.TokenSource(ctx, userID)
	if err != nil {
		return nil, err
	}
	return calendar.NewService(ctx, option.WithTokenSource(ts))
}

// ensureCalendar finds the dedicated calendar by name, creating it on first
// use.
func (s *GoogleCalendarService) ensureCalendar(srv *calendar.Service) (string, error) {
	list, err := srv.CalendarList.List().Do()
	if err != nil {
		return "", err
	}
	for _, entry := range list.Items {
		if entry.Summary == s.calendarName {
			return entry.Id, nil
		}
	}

	created, err := srv.Calendars.Insert(&calendar.Calendar{Summary: s.calendarName}).Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

// UpcomingEvents lists events over the next `days` days on the dedicated
// calendar, grouped by date with at most maxPerDay events per day.
func (s *GoogleCalendarService) UpcomingEvents(ctx context.Context, userID uint, days, maxPerDay int) ([]UpcomingDay, error) {
	if days <= 0 {
		days = 7
	}
	if maxPerDay <= 0 {
		maxPerDay = 3
	}

	srv, err := s.client(ctx, userID)
	if err != nil {
		return nil, err
	}

	calendarID, err := s.ensureCalendar(srv)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	events, err := srv.Events.List(calendarID).
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, days).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(250).
		Do()
	if err != nil {
		return nil, err
	}

	byDate := map[string][]EventSummary{}
	for _, ev := range events.Items {
		start := ev.Start.DateTime
		if start == "" {
			start = ev.Start.Date
		}
		end := ev.End.DateTime
		if end == "" {
			end = ev.End.Date
		}

		date := start
		if len(date) > 10 {
			date = date[:10]
		}
		if len(byDate[date]) >= maxPerDay {
			continue
		}
		byDate[date] = append(byDate[date], EventSummary{
			ID:          ev.Id,
			Summary:     ev.Summary,
			Description: ev.Description,
			Start:       start,
			End:         end,
		})
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]UpcomingDay, 0, len(dates))
	for _, date := range dates {
		out = append(out, UpcomingDay{Date: date, Events: byDate[date]})
	}
	return out, nil
}

// CreateEvent creates an event on the dedicated calendar.
func (s *GoogleCalendarService) CreateEvent(ctx context.Context, userID uint, summary, description string, start, end time.Time) (*calendar.Event, error) {
	srv, err := s.client(ctx, userID)
	if err != nil {
		return nil, err
	}

	calendarID, err := s.ensureCalendar(srv)
	if err != nil {
		return nil, err
	}

	event := &calendar.Event{
		Summary:     summary,
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}
	return srv.Events.Insert(calendarID, event).Do()
}
