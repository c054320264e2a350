package handlers

import (
	"time"

	"davetiye.link/pkg/calendar"

	"github.com/gofiber/fiber/v2"
)

// CalendarHandler tarih seçicinin ay ızgarasını JSON olarak sunar.
type CalendarHandler struct {
	now func() time.Time
}

func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{now: time.Now}
}

type calendarCell struct {
	calendar.DayCell
	Date     string `json:"date"`
	Selected bool   `json:"selected"`
}

// GetMonth (GET /api/calendar?year=&month=&selected=) month 0-11 aralığındadır; taşan
// değerler yıla yansıtılır. Parametre yoksa seçili tarihin, o da yoksa bugünün ayı döner.
func (h *CalendarHandler) GetMonth(c *fiber.Ctx) error {
	selected := c.Query("selected")
	if selected != "" {
		if _, err := calendar.ParseDate(selected); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "selected must be a YYYY-MM-DD date"})
		}
	}

	picker := calendar.NewPicker(selected, h.now(), nil)
	if c.Query("year") != "" || c.Query("month") != "" {
		year, month := picker.View()
		year = c.QueryInt("year", year)
		month = c.QueryInt("month", month)
		picker = calendar.PickerAt(year, month, selected, nil)
	}

	year, month := picker.View()
	grid := picker.Grid()
	cells := make([]calendarCell, len(grid))
	for i, cell := range grid {
		cells[i] = calendarCell{
			DayCell:  cell,
			Date:     picker.Resolve(cell).String(),
			Selected: picker.IsSelected(cell),
		}
	}
	return c.JSON(fiber.Map{
		"year":     year,
		"month":    month,
		"title":    picker.Title(),
		"selected": selected,
		"cells":    cells,
	})
}
