package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"davetiye.link/models"
	"davetiye.link/pkg/eventcodec"
	"davetiye.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeThemeRepo struct {
	themes    []models.Theme
	err       error
	countErr  error
	findCalls int
}

func (f *fakeThemeRepo) FindAll(context.Context) ([]models.Theme, error) {
	f.findCalls++
	return f.themes, f.err
}
func (f *fakeThemeRepo) CountAll(context.Context) (int64, error) {
	return int64(len(f.themes)), f.countErr
}

type fakeGiftRepo struct {
	gifts []models.Gift
	err   error
}

func (f *fakeGiftRepo) FindAll(context.Context) ([]models.Gift, error) { return f.gifts, f.err }

var (
	_ repositories.IThemeRepository = (*fakeThemeRepo)(nil)
	_ repositories.IGiftRepository  = (*fakeGiftRepo)(nil)
)

func testCatalog(t *testing.T) *CatalogService {
	t.Helper()
	svc := NewCatalogServiceWithRepos(
		&fakeThemeRepo{themes: []models.Theme{
			{Code: "classic", Name: "Classic Gold", IsDefault: true},
			{Code: "romantic", Name: "Romantic Rose"},
			{Code: "modern", Name: "Modern Minimal"},
		}},
		&fakeGiftRepo{gifts: []models.Gift{
			{Code: "watch", Name: "Luxury Watch", Icon: "⌚"},
			{Code: "travel", Name: "Travel Voucher", Icon: "✈️"},
			{Code: "home", Name: "Home Decor", Icon: "🏠"},
			{Code: "dinner", Name: "Romantic Dinner", Icon: "🕯️"},
		}},
	)
	require.NoError(t, svc.Reload(context.Background()))
	return svc
}

func testInvitationService(t *testing.T) *InvitationService {
	svc := NewInvitationService(testCatalog(t), 8192)
	svc.now = func() time.Time { return time.Date(2025, time.December, 10, 22, 0, 0, 0, time.UTC) }
	return svc
}

func TestCatalogService_ThemeFallback(t *testing.T) {
	svc := testCatalog(t)
	assert.Equal(t, "romantic", svc.ThemeFor("romantic").Code)
	assert.Equal(t, "classic", svc.ThemeFor("gothic").Code)
	assert.Equal(t, "classic", svc.ThemeFor("").Code)
	assert.Equal(t, "classic", svc.DefaultThemeCode())
	assert.Len(t, svc.Themes(), 3)
	assert.Len(t, svc.Gifts(), 4)

	g, ok := svc.Gift("home")
	assert.True(t, ok)
	assert.Equal(t, "Home Decor", g.Name)
	_, ok = svc.Gift("yacht")
	assert.False(t, ok)
}

func TestCatalogService_FirstThemeIsDefaultWhenNoneMarked(t *testing.T) {
	svc := NewCatalogServiceWithRepos(
		&fakeThemeRepo{themes: []models.Theme{{Code: "modern"}, {Code: "classic"}}},
		&fakeGiftRepo{},
	)
	require.NoError(t, svc.Reload(context.Background()))
	assert.Equal(t, "modern", svc.DefaultThemeCode())
}

func TestCatalogService_ReloadErrors(t *testing.T) {
	empty := &fakeThemeRepo{}
	svc := NewCatalogServiceWithRepos(empty, &fakeGiftRepo{})
	assert.ErrorIs(t, svc.Reload(context.Background()), ErrCatalogEmpty)
	assert.Zero(t, empty.findCalls, "boş katalogda temalar okunmamalı")

	svc = NewCatalogServiceWithRepos(&fakeThemeRepo{themes: []models.Theme{{Code: "a"}}, countErr: errors.New("db down")}, &fakeGiftRepo{})
	assert.ErrorIs(t, svc.Reload(context.Background()), ErrCatalogLoadFailed)

	svc = NewCatalogServiceWithRepos(&fakeThemeRepo{themes: []models.Theme{{Code: "a"}}, err: errors.New("db down")}, &fakeGiftRepo{})
	assert.ErrorIs(t, svc.Reload(context.Background()), ErrCatalogLoadFailed)

	svc = NewCatalogServiceWithRepos(&fakeThemeRepo{themes: []models.Theme{{Code: "a"}}}, &fakeGiftRepo{err: errors.New("db down")})
	assert.ErrorIs(t, svc.Reload(context.Background()), ErrCatalogLoadFailed)
}

func TestValidateShareRequest(t *testing.T) {
	ok := ShareRequest{Names: "Anu & Raj", HostName: "Anu", Date: "2025-12-20"}
	assert.NoError(t, ValidateShareRequest(ok))

	cases := []struct {
		mutate func(*ShareRequest)
		want   error
	}{
		{func(r *ShareRequest) { r.Names = "  " }, ErrNamesRequired},
		{func(r *ShareRequest) { r.HostName = "" }, ErrHostRequired},
		{func(r *ShareRequest) { r.Date = "" }, ErrDateRequired},
		{func(r *ShareRequest) { r.Date = "2025-02-30" }, ErrInvalidDate},
		{func(r *ShareRequest) { r.Date = "20/12/2025" }, ErrInvalidDate},
	}
	for _, tc := range cases {
		req := ok
		tc.mutate(&req)
		assert.ErrorIs(t, ValidateShareRequest(req), tc.want)
	}
}

func TestInvitationService_ShareAndOpen(t *testing.T) {
	svc := testInvitationService(t)
	ctx := context.Background()

	res, err := svc.Share(ctx, ShareRequest{
		Names:      " Anu & Raj ",
		HostName:   "Anu",
		Date:       "2025-12-20",
		TemplateID: "romantic",
		Gifts:      []string{"watch", "", "travel", "yacht"},
	}, "https://davetiye.link/")
	require.NoError(t, err)

	assert.True(t, eventcodec.Valid(res.Token))
	assert.Equal(t, "/intro/"+res.Token, res.IntroPath)
	assert.Equal(t, "https://davetiye.link/intro/"+res.Token, res.IntroURL)
	assert.Equal(t, "https://davetiye.link/event/"+res.Token, res.EventURL)
	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/?text=https%3A%2F%2Fdavetiye.link%2Fintro%2F"))
	assert.Equal(t, "Anu & Raj", res.Record.Names)
	assert.Equal(t, []string{"watch", "travel", "yacht"}, res.Record.Gifts)

	view, err := svc.Open(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Record, view.Record)
	assert.Equal(t, "romantic", view.Theme.Code)
	assert.Equal(t, "December 20, 2025", view.DisplayDate)
	assert.Equal(t, 10, view.DaysUntil)
	require.Len(t, view.Gifts, 2, "bilinmeyen hediye atlanmalı")
	assert.Equal(t, "watch", view.Gifts[0].Code)
	assert.Equal(t, "travel", view.Gifts[1].Code)
}

func TestInvitationService_ShareDefaultsTemplate(t *testing.T) {
	svc := testInvitationService(t)
	res, err := svc.Share(context.Background(), ShareRequest{Names: "A", HostName: "B", Date: "2026-01-01"}, "")
	require.NoError(t, err)
	assert.Equal(t, "classic", res.Record.TemplateID)
	assert.Equal(t, []string{}, res.Record.Gifts)
	assert.Equal(t, "/event/"+res.Token, res.EventURL)
}

func TestInvitationService_ShareRejectsMissingFields(t *testing.T) {
	svc := testInvitationService(t)
	_, err := svc.Share(context.Background(), ShareRequest{Names: "A", Date: "2026-01-01"}, "")
	assert.ErrorIs(t, err, ErrHostRequired)
}

func TestInvitationService_ShareRejectsOversizedToken(t *testing.T) {
	svc := NewInvitationService(testCatalog(t), 64)
	_, err := svc.Share(context.Background(), ShareRequest{
		Names: "A", HostName: "B", Date: "2026-01-01", Description: strings.Repeat("long ", 40),
	}, "")
	assert.ErrorIs(t, err, ErrInvitationTooLong)
}

func TestInvitationService_OpenUniformFailure(t *testing.T) {
	svc := testInvitationService(t)
	ctx := context.Background()

	for _, token := range []string{"", "!!!not-base64!!!", "abc+/=", "eyJuYW1lcyI6ImEifQ", strings.Repeat("A", 9000)} {
		view, err := svc.Open(ctx, token)
		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrInvitationUnavailable, "token %q", token)
	}
}

func TestInvitationService_OpenUnknownThemeFallsBack(t *testing.T) {
	svc := testInvitationService(t)
	token, err := eventcodec.Encode(eventcodec.EventRecord{Names: "A", HostName: "B", Date: "2024-02-29", TemplateID: "neon"})
	require.NoError(t, err)

	view, err := svc.Open(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "classic", view.Theme.Code)
	assert.Equal(t, "neon", view.Record.TemplateID)
	assert.Less(t, view.DaysUntil, 0)
}

func TestInvitationService_CalendarFile(t *testing.T) {
	svc := testInvitationService(t)
	ctx := context.Background()
	res, err := svc.Share(ctx, ShareRequest{Names: "Anu & Raj", HostName: "Anu", Date: "2025-12-20", Description: "Dinner at eight"}, "https://davetiye.link")
	require.NoError(t, err)

	data, err := svc.CalendarFile(ctx, res.Token, "https://davetiye.link", false)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "BEGIN:VEVENT")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20251220")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20251221")
	assert.Contains(t, out, "SUMMARY:Anu & Raj")
	assert.NotContains(t, out, "RRULE")

	again, err := svc.CalendarFile(ctx, res.Token, "https://davetiye.link", true)
	require.NoError(t, err)
	assert.Contains(t, string(again), "RRULE:FREQ=YEARLY")

	uid := func(s string) string {
		for _, line := range strings.Split(s, "\n") {
			if strings.HasPrefix(line, "UID:") {
				return strings.TrimSpace(line)
			}
		}
		return ""
	}
	assert.NotEmpty(t, uid(out))
	assert.Equal(t, uid(out), uid(string(again)))

	_, err = svc.CalendarFile(ctx, "!!!", "", false)
	assert.ErrorIs(t, err, ErrInvitationUnavailable)
}
