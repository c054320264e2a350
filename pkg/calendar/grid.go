// Package calendar tarih seçici için ay ızgarasını ve gezinme durumunu hesaplar.
// Aylar 0-11 aralığındadır (0 = Ocak); Date tipindeki Month ise 1-12'dir.
package calendar

import (
	"fmt"
	"time"
)

// GridSize ızgaradaki hücre sayısı: 6 tam hafta. Aylar arası geçişte düzen kaymaz.
const GridSize = 42

// DayCell ızgaradaki tek bir gün.
type DayCell struct {
	Day           int  `json:"day"`
	InViewedMonth bool `json:"inViewedMonth"`
	MonthOffset   int  `json:"monthOffset"` // -1 önceki ay, 0 görüntülenen ay, +1 sonraki ay
}

// Date saat dilimi içermeyen takvim günü.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int
}

// ParseDate "YYYY-MM-DD" biçimindeki tarihi çözer; geçersiz günleri reddeder.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// FromTime t'nin kendi konumundaki takvim alanlarını alır.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsLeapYear Gregoryen artık yıl kuralı.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth month (0-11) ayındaki gün sayısı.
func DaysInMonth(year, month int) int {
	year, month = normalize(year, month)
	switch month {
	case 1:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 3, 5, 8, 10:
		return 30
	default:
		return 31
	}
}

// FirstWeekday ayın ilk gününün haftanın hangi günü olduğunu döndürür (0 = Pazar).
func FirstWeekday(year, month int) int {
	year, month = normalize(year, month)
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// ComputeGrid verilen ay için her zaman 42 hücre üretir: önceki ayın son
// günleri, ayın tüm günleri ve kalan yer kadar sonraki ayın ilk günleri.
func ComputeGrid(year, month int) []DayCell {
	year, month = normalize(year, month)
	cells := make([]DayCell, 0, GridSize)

	lead := FirstWeekday(year, month)
	prevDays := DaysInMonth(year, month-1)
	for i := lead - 1; i >= 0; i-- {
		cells = append(cells, DayCell{Day: prevDays - i, MonthOffset: -1})
	}

	for d := 1; d <= DaysInMonth(year, month); d++ {
		cells = append(cells, DayCell{Day: d, InViewedMonth: true})
	}

	for d := 1; len(cells) < GridSize; d++ {
		cells = append(cells, DayCell{Day: d, MonthOffset: 1})
	}
	return cells
}

// ResolveCell hücrenin (year, month) görünümündeki gerçek takvim tarihini verir.
func ResolveCell(year, month int, cell DayCell) Date {
	y, m := normalize(year, month+cell.MonthOffset)
	return Date{Year: y, Month: m + 1, Day: cell.Day}
}

// MonthTitle "June 2025" biçiminde başlık.
func MonthTitle(year, month int) string {
	year, month = normalize(year, month)
	return fmt.Sprintf("%s %d", time.Month(month+1), year)
}

// normalize taşan ay değerlerini yıla yansıtır (ör. -1 → önceki yılın Aralık'ı).
func normalize(year, month int) (int, int) {
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}
	return year, month
}
