package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"davetiye.link/configs/configslog"
	"davetiye.link/models"
	"davetiye.link/pkg/calendar"
	"davetiye.link/pkg/eventcodec"

	"go.uber.org/zap"
)

// InvitationServiceError özel servis hataları. Mesajlar kullanıcıya gösterilir.
type InvitationServiceError string

func (e InvitationServiceError) Error() string { return string(e) }

const (
	ErrNamesRequired         InvitationServiceError = "event name is required"
	ErrHostRequired          InvitationServiceError = "host name is required"
	ErrDateRequired          InvitationServiceError = "event date is required"
	ErrInvalidDate           InvitationServiceError = "event date is not a valid calendar date"
	ErrInvitationEncoding    InvitationServiceError = "invitation could not be encoded"
	ErrInvitationTooLong     InvitationServiceError = "invitation text is too long to fit in a link"
	ErrInvitationUnavailable InvitationServiceError = "invitation unavailable"
)

// ShareRequest oluşturma formundan (veya API'den) gelen alanlar.
type ShareRequest struct {
	Names       string   `form:"names" json:"names"`
	HostName    string   `form:"host_name" json:"hostName"`
	Date        string   `form:"date" json:"date"`
	Description string   `form:"description" json:"description"`
	TemplateID  string   `form:"template_id" json:"templateId"`
	Gifts       []string `form:"gifts" json:"gifts"`
}

// ShareResult paylaşılacak linkler.
type ShareResult struct {
	Token       string                 `json:"token"`
	Record      eventcodec.EventRecord `json:"record"`
	IntroPath   string                 `json:"introPath"`
	EventPath   string                 `json:"eventPath"`
	IntroURL    string                 `json:"introUrl"`
	EventURL    string                 `json:"eventUrl"`
	WhatsAppURL string                 `json:"whatsappUrl"`
}

// InvitationView davetiye sayfasının ihtiyaç duyduğu her şey.
type InvitationView struct {
	Token       string                 `json:"token"`
	Record      eventcodec.EventRecord `json:"record"`
	Theme       models.Theme           `json:"theme"`
	Gifts       []models.Gift          `json:"gifts"`
	EventDate   calendar.Date          `json:"-"`
	DisplayDate string                 `json:"displayDate"`
	DaysUntil   int                    `json:"daysUntil"` // geçmiş tarihlerde negatif
}

// IInvitationService davetiye paylaşma ve açma işlemleri için arayüz.
type IInvitationService interface {
	Share(ctx context.Context, req ShareRequest, baseURL string) (*ShareResult, error)
	Open(ctx context.Context, token string) (*InvitationView, error)
	CalendarFile(ctx context.Context, token string, baseURL string, yearly bool) ([]byte, error)
}

// InvitationService IInvitationService arayüzünü uygular. Davetiyeler saklanmaz;
// token davetiyenin kendisidir.
type InvitationService struct {
	catalog        ICatalogService
	tokenMaxLength int
	now            func() time.Time
}

// NewInvitationService yeni bir InvitationService örneği oluşturur.
func NewInvitationService(catalog ICatalogService, tokenMaxLength int) *InvitationService {
	return &InvitationService{catalog: catalog, tokenMaxLength: tokenMaxLength, now: time.Now}
}

// --- Yardımcı Metodlar ---

// ValidateShareRequest yalnızca varlık kontrolü ve tarih çözümlemesi yapar.
func ValidateShareRequest(req ShareRequest) error {
	if strings.TrimSpace(req.Names) == "" {
		return ErrNamesRequired
	}
	if strings.TrimSpace(req.HostName) == "" {
		return ErrHostRequired
	}
	if strings.TrimSpace(req.Date) == "" {
		return ErrDateRequired
	}
	if _, err := calendar.ParseDate(strings.TrimSpace(req.Date)); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// InvitationPaths token için intro ve davetiye yollarını üretir.
func InvitationPaths(token string) (introPath, eventPath string) {
	return "/intro/" + token, "/event/" + token
}

// FormatDisplayDate "December 20, 2025" biçimi.
func FormatDisplayDate(d calendar.Date) string {
	return fmt.Sprintf("%s %d, %d", time.Month(d.Month), d.Day, d.Year)
}

// --- Servis Metodları ---

// Share formu doğrular, kaydı token'a çevirir ve paylaşım linklerini üretir.
func (s *InvitationService) Share(ctx context.Context, req ShareRequest, baseURL string) (*ShareResult, error) {
	if err := ValidateShareRequest(req); err != nil {
		return nil, err
	}

	rec := eventcodec.EventRecord{
		Names:       strings.TrimSpace(req.Names),
		HostName:    strings.TrimSpace(req.HostName),
		Date:        strings.TrimSpace(req.Date),
		Description: strings.TrimSpace(req.Description),
		TemplateID:  strings.TrimSpace(req.TemplateID),
		Gifts:       make([]string, 0, len(req.Gifts)),
	}
	if rec.TemplateID == "" {
		rec.TemplateID = s.catalog.DefaultThemeCode()
	}
	for _, g := range req.Gifts {
		if g = strings.TrimSpace(g); g != "" {
			rec.Gifts = append(rec.Gifts, g)
		}
	}

	token, err := eventcodec.Encode(rec)
	if err != nil {
		configslog.Log.Warn("Davetiye kodlanamadı", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvitationEncoding, err)
	}
	if len(token) > s.tokenMaxLength {
		configslog.Log.Warn("Davetiye token'ı izin verilen uzunluğu aşıyor", zap.Int("length", len(token)), zap.Int("max", s.tokenMaxLength))
		return nil, ErrInvitationTooLong
	}

	introPath, eventPath := InvitationPaths(token)
	base := strings.TrimRight(baseURL, "/")
	result := &ShareResult{
		Token:     token,
		Record:    rec,
		IntroPath: introPath,
		EventPath: eventPath,
		IntroURL:  base + introPath,
		EventURL:  base + eventPath,
	}
	result.WhatsAppURL = "https://wa.me/?text=" + url.QueryEscape(result.IntroURL)

	configslog.SLog.Infof("Davetiye linki oluşturuldu: tema %s, %d hediye, token uzunluğu %d", rec.TemplateID, len(rec.Gifts), len(token))
	return result, nil
}

// Open token'ı çözer ve sunuma hazır görünümü döndürür. Her hata
// ErrInvitationUnavailable olarak döner; ayrıntı yalnızca loglanır.
func (s *InvitationService) Open(ctx context.Context, token string) (*InvitationView, error) {
	if token == "" || len(token) > s.tokenMaxLength || !eventcodec.Valid(token) {
		configslog.Log.Warn("Geçersiz formatta davetiye token'ı", zap.Int("length", len(token)))
		return nil, ErrInvitationUnavailable
	}

	rec, err := eventcodec.Decode(token)
	if err != nil {
		configslog.Log.Warn("Davetiye token'ı çözülemedi", zap.Stringer("kind", eventcodec.KindOf(err)), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvitationUnavailable, err)
	}
	date, err := calendar.ParseDate(rec.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvitationUnavailable, err)
	}

	view := &InvitationView{
		Token:       token,
		Record:      rec,
		Theme:       s.catalog.ThemeFor(rec.TemplateID),
		Gifts:       make([]models.Gift, 0, len(rec.Gifts)),
		EventDate:   date,
		DisplayDate: FormatDisplayDate(date),
		DaysUntil:   daysBetween(calendar.FromTime(s.now()), date),
	}
	for _, code := range rec.Gifts {
		gift, ok := s.catalog.Gift(code)
		if !ok {
			configslog.SLog.Debugf("Bilinmeyen hediye kodu atlandı: %s", code)
			continue
		}
		view.Gifts = append(view.Gifts, gift)
	}
	return view, nil
}

func daysBetween(from, to calendar.Date) int {
	a := time.Date(from.Year, time.Month(from.Month), from.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year, time.Month(to.Month), to.Day, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

var _ IInvitationService = (*InvitationService)(nil)
