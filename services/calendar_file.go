package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"davetiye.link/configs/configslog"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

// anniversaryCount yıllık tekrarda takvime eklenecek yıldönümü sayısı.
const anniversaryCount = 50

const icsProductID = "-//davetiye.link//Invitation//EN"

// CalendarFile davetiye için tüm gün süren tek etkinlikli bir ICS dosyası üretir.
// yearly verilirse etkinlik her yıl tekrar eder (yıldönümü).
func (s *InvitationService) CalendarFile(ctx context.Context, token string, baseURL string, yearly bool) ([]byte, error) {
	view, err := s.Open(ctx, token)
	if err != nil {
		return nil, err
	}
	rec := view.Record
	start := time.Date(view.EventDate.Year, time.Month(view.EventDate.Month), view.EventDate.Day, 0, 0, 0, 0, time.UTC)

	_, eventPath := InvitationPaths(token)
	eventURL := strings.TrimRight(baseURL, "/") + eventPath

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	// Aynı davetiye her indirmede aynı UID'yi almalı; takvimler kopya oluşturmaz.
	event := cal.AddEvent(uuid.NewSHA1(uuid.NameSpaceURL, []byte(eventURL)).String() + "@davetiye.link")
	event.SetDtStampTime(s.now().UTC())
	event.SetAllDayStartAt(start)
	event.SetAllDayEndAt(start.AddDate(0, 0, 1))
	event.SetSummary(rec.Names)
	event.SetDescription(calendarDescription(rec.HostName, rec.Description, eventURL))
	event.SetProperty(ics.ComponentPropertyUrl, eventURL)

	if yearly {
		opt := rrule.ROption{Freq: rrule.YEARLY, Dtstart: start, Count: anniversaryCount}
		if _, err := rrule.NewRRule(opt); err != nil {
			configslog.Log.Error("Yıllık tekrar kuralı oluşturulamadı", zap.String("date", rec.Date), zap.Error(err))
			return nil, fmt.Errorf("yıllık tekrar kuralı: %w", err)
		}
		event.AddRrule(opt.RRuleString())
	}

	return []byte(cal.Serialize()), nil
}

func calendarDescription(host, description, eventURL string) string {
	var b strings.Builder
	b.WriteString("Hosted by ")
	b.WriteString(host)
	if description != "" {
		b.WriteString("\n\n")
		b.WriteString(description)
	}
	b.WriteString("\n\n")
	b.WriteString(eventURL)
	return b.String()
}
