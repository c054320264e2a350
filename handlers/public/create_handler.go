package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"davetiye.link/configs/configslog"
	"davetiye.link/pkg/calendar"
	"davetiye.link/pkg/flashmessages"
	"davetiye.link/pkg/renderer"
	"davetiye.link/pkg/videostore"
	"davetiye.link/services"
	"davetiye.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// CreateHandler davetiye oluşturma formunu, tarih seçiciyi ve paylaşım adımını yönetir.
type CreateHandler struct {
	invitationService services.IInvitationService
	catalogService    services.ICatalogService
	videos            *videostore.Store
	baseURL           string
	now               func() time.Time
}

// NewCreateHandler yeni bir CreateHandler örneği oluşturur.
func NewCreateHandler(invitationService services.IInvitationService, catalogService services.ICatalogService, videos *videostore.Store, baseURL string) *CreateHandler {
	return &CreateHandler{
		invitationService: invitationService,
		catalogService:    catalogService,
		videos:            videos,
		baseURL:           baseURL,
		now:               time.Now,
	}
}

type pickerCell struct {
	Day           int
	InViewedMonth bool
	Selected      bool
	Value         string // "offset:day", pick butonunun değeri
}

type pickerView struct {
	Year      int
	Month     int
	Direction int
	Title     string
	Cells     []pickerCell
}

func newPickerView(p *calendar.Picker) pickerView {
	year, month := p.View()
	grid := p.Grid()
	cells := make([]pickerCell, len(grid))
	for i, cell := range grid {
		cells[i] = pickerCell{
			Day:           cell.Day,
			InViewedMonth: cell.InViewedMonth,
			Selected:      p.IsSelected(cell),
			Value:         fmt.Sprintf("%d:%d", cell.MonthOffset, cell.Day),
		}
	}
	return pickerView{Year: year, Month: month, Direction: p.Direction(), Title: p.Title(), Cells: cells}
}

// parsePick "offset:day" değerini görünümdeki bir hücreye çevirir.
func parsePick(value string, viewYear, viewMonth int) (calendar.DayCell, bool) {
	offsetStr, dayStr, ok := strings.Cut(value, ":")
	if !ok {
		return calendar.DayCell{}, false
	}
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < -1 || offset > 1 {
		return calendar.DayCell{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > calendar.DaysInMonth(viewYear, viewMonth+offset) {
		return calendar.DayCell{}, false
	}
	return calendar.DayCell{Day: day, InViewedMonth: offset == 0, MonthOffset: offset}, true
}

func (h *CreateHandler) renderCreate(c *fiber.Ctx, form services.ShareRequest, picker *calendar.Picker, data fiber.Map, status int) error {
	if form.TemplateID == "" {
		form.TemplateID = h.catalogService.DefaultThemeCode()
	}
	data["Title"] = "Create"
	data["Form"] = form
	data["Picker"] = newPickerView(picker)
	data["Themes"] = h.catalogService.Themes()
	data["Gifts"] = h.catalogService.Gifts()
	data["HasVideo"] = h.hasVideo(c)
	if d, err := calendar.ParseDate(form.Date); err == nil {
		data["SelectedDisplay"] = services.FormatDisplayDate(d)
	}
	return renderer.Render(c, "pages/create", "layouts/main", data, status)
}

func (h *CreateHandler) hasVideo(c *fiber.Ctx) bool {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return false
	}
	_, ok := h.videos.Get(utils.GetPendingVideoID(sess))
	return ok
}

// attachVideo formda video varsa depoya koyar ve oturumdaki önceki videonun yerine geçirir.
func (h *CreateHandler) attachVideo(c *fiber.Ctx) error {
	fh, err := c.FormFile("video")
	if err != nil || fh.Size == 0 {
		return nil
	}
	if fh.Size > h.videos.MaxVideoBytes() {
		return videostore.ErrVideoTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("video dosyası açılamadı: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("video dosyası okunamadı: %w", err)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	id, err := h.videos.Put(videostore.Video{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return err
	}
	h.replacePendingVideo(sess, id)
	configslog.SLog.Infof("Tanıtım videosu yüklendi: %s (%d byte)", fh.Filename, len(data))
	return nil
}

func (h *CreateHandler) replacePendingVideo(sess *session.Session, id string) {
	if old := utils.GetPendingVideoID(sess); old != "" && old != id {
		h.videos.Delete(old)
	}
	if err := utils.SetPendingVideoID(sess, id); err != nil {
		configslog.Log.Error("Video kimliği session'a yazılamadı", zap.Error(err))
	}
}

func videoErrorMessage(err error) string {
	switch {
	case errors.Is(err, videostore.ErrVideoTooLarge), errors.Is(err, videostore.ErrEmptyVideo), errors.Is(err, videostore.ErrNotVideo):
		return err.Error()
	default:
		return "The video could not be uploaded."
	}
}

func (h *CreateHandler) shareBaseURL(c *fiber.Ctx) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	return c.BaseURL()
}

// ShowCreate (GET /create) boş ya da bir önceki hatalı denemeden dolu formu gösterir.
func (h *CreateHandler) ShowCreate(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	var form services.ShareRequest
	flashmessages.GetFlashFormData(c, &form)

	picker := calendar.NewPicker(form.Date, h.now(), nil)
	data := fiber.Map{}
	renderer.SetFlashMessages(data, flashData)
	return h.renderCreate(c, form, picker, data, fiber.StatusOK)
}

// CalendarAction (POST /create/calendar) ay gezinmesini ve gün seçimini uygular, formu
// girilen değerleri koruyarak yeniden çizer.
func (h *CreateHandler) CalendarAction(c *fiber.Ctx) error {
	var form services.ShareRequest
	if err := c.BodyParser(&form); err != nil {
		configslog.Log.Warn("CalendarAction: form verisi parse edilemedi", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/create", fiber.StatusSeeOther)
	}

	onSelect := func(date string) { form.Date = date }
	var picker *calendar.Picker
	viewYear, errYear := strconv.Atoi(c.FormValue("view_year"))
	viewMonth, errMonth := strconv.Atoi(c.FormValue("view_month"))
	if errYear != nil || errMonth != nil {
		picker = calendar.NewPicker(form.Date, h.now(), onSelect)
	} else {
		picker = calendar.PickerAt(viewYear, viewMonth, form.Date, onSelect)
	}

	switch c.FormValue("nav") {
	case "prev":
		picker.PrevMonth()
	case "next":
		picker.NextMonth()
	}
	if pick := c.FormValue("pick"); pick != "" {
		year, month := picker.View()
		if cell, ok := parsePick(pick, year, month); ok {
			picker.SelectDay(cell)
		} else {
			configslog.SLog.Debugf("Geçersiz gün seçimi yok sayıldı: %s", pick)
		}
	}

	data := fiber.Map{}
	if err := h.attachVideo(c); err != nil {
		configslog.Log.Warn("CalendarAction: video eklenemedi", zap.Error(err))
		data[renderer.FlashErrorKeyView] = videoErrorMessage(err)
	}
	return h.renderCreate(c, form, picker, data, fiber.StatusOK)
}

// Share (POST /create) davetiye linkini oluşturur ve paylaşım ekranını gösterir.
func (h *CreateHandler) Share(c *fiber.Ctx) error {
	var form services.ShareRequest
	if err := c.BodyParser(&form); err != nil {
		configslog.Log.Warn("Share: form verisi parse edilemedi", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/create", fiber.StatusSeeOther)
	}

	if err := h.attachVideo(c); err != nil {
		configslog.Log.Warn("Share: video eklenemedi", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, videoErrorMessage(err))
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/create", fiber.StatusSeeOther)
	}

	result, err := h.invitationService.Share(c.UserContext(), form, h.shareBaseURL(c))
	if err != nil {
		errMsg := "The invitation could not be created."
		var svcErr services.InvitationServiceError
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Share: davetiye oluşturulamadı", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/create", fiber.StatusSeeOther)
	}

	return renderer.Render(c, "pages/share", "layouts/main", fiber.Map{
		"Title":    "Share",
		"Result":   result,
		"HasVideo": h.hasVideo(c),
	})
}
