package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countCurrent(cells []DayCell) int {
	n := 0
	for _, c := range cells {
		if c.InViewedMonth {
			n++
		}
	}
	return n
}

func TestComputeGrid_AlwaysFortyTwoCells(t *testing.T) {
	for y := 1900; y <= 2100; y++ {
		for m := 0; m < 12; m++ {
			cells := ComputeGrid(y, m)
			require.Len(t, cells, GridSize, "%d-%02d", y, m+1)
			require.Equal(t, DaysInMonth(y, m), countCurrent(cells), "%d-%02d", y, m+1)

			// önce -1'ler, sonra 0'lar, en son +1'ler
			last := -1
			for _, c := range cells {
				require.GreaterOrEqual(t, c.MonthOffset, last)
				require.Equal(t, c.MonthOffset == 0, c.InViewedMonth)
				last = c.MonthOffset
			}
		}
	}
}

func TestComputeGrid_LeapYear(t *testing.T) {
	assert.Equal(t, 29, countCurrent(ComputeGrid(2024, 1)))
	assert.Equal(t, 28, countCurrent(ComputeGrid(2023, 1)))
	assert.Equal(t, 28, countCurrent(ComputeGrid(1900, 1)))
	assert.Equal(t, 29, countCurrent(ComputeGrid(2000, 1)))
}

func TestComputeGrid_LeadingAndTrailingDays(t *testing.T) {
	// 1 Haziran 2025 Pazar: önceki aydan hücre yok.
	june := ComputeGrid(2025, 5)
	assert.Equal(t, DayCell{Day: 1, InViewedMonth: true}, june[0])
	assert.Equal(t, DayCell{Day: 30, InViewedMonth: true}, june[29])
	assert.Equal(t, DayCell{Day: 1, MonthOffset: 1}, june[30])
	assert.Equal(t, DayCell{Day: 12, MonthOffset: 1}, june[41])

	// 1 Ocak 2025 Çarşamba: Aralık 2024'ün son üç günü.
	jan := ComputeGrid(2025, 0)
	assert.Equal(t, []DayCell{
		{Day: 29, MonthOffset: -1},
		{Day: 30, MonthOffset: -1},
		{Day: 31, MonthOffset: -1},
		{Day: 1, InViewedMonth: true},
	}, jan[:4])

	// 1 Mart 2024 Cuma: artık yıl Şubat'ının son beş günü.
	march := ComputeGrid(2024, 2)
	assert.Equal(t, DayCell{Day: 25, MonthOffset: -1}, march[0])
	assert.Equal(t, DayCell{Day: 29, MonthOffset: -1}, march[4])
}

func TestComputeGrid_DecemberRollsIntoJanuary(t *testing.T) {
	dec := ComputeGrid(2025, 11)
	lastCell := dec[GridSize-1]
	require.Equal(t, 1, lastCell.MonthOffset)
	assert.Equal(t, Date{Year: 2026, Month: 1, Day: lastCell.Day}, ResolveCell(2025, 11, lastCell))
}

func TestDaysInMonth(t *testing.T) {
	want := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m, d := range want {
		assert.Equal(t, d, DaysInMonth(2023, m))
	}
	assert.Equal(t, 31, DaysInMonth(2024, -1), "önceki yılın Aralık'ı")
	assert.Equal(t, 31, DaysInMonth(2024, 12), "sonraki yılın Ocak'ı")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{2024, 2, 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestPicker_MonthRollover(t *testing.T) {
	p := PickerAt(2025, 0, "", nil)
	p.PrevMonth()
	y, m := p.View()
	assert.Equal(t, 2024, y)
	assert.Equal(t, 11, m)
	assert.Equal(t, -1, p.Direction())

	p = PickerAt(2025, 11, "", nil)
	p.NextMonth()
	y, m = p.View()
	assert.Equal(t, 2026, y)
	assert.Equal(t, 0, m)
	assert.Equal(t, 1, p.Direction())
}

func TestNewPicker_SeedsView(t *testing.T) {
	today := time.Date(2026, time.October, 19, 23, 30, 0, 0, time.UTC)

	p := NewPicker("2025-06-15", today, nil)
	y, m := p.View()
	assert.Equal(t, 2025, y)
	assert.Equal(t, 5, m)
	assert.Equal(t, 0, p.Direction())

	p = NewPicker("", today, nil)
	y, m = p.View()
	assert.Equal(t, 2026, y)
	assert.Equal(t, 9, m)
	assert.Equal(t, "October 2026", p.Title())

	p = NewPicker("not-a-date", today, nil)
	y, _ = p.View()
	assert.Equal(t, 2026, y)
}

func TestPicker_IsSelectedMarksExactlyOneCell(t *testing.T) {
	for _, zone := range []string{"UTC", "Pacific/Kiritimati", "America/Adak", "Asia/Kolkata"} {
		t.Run(zone, func(t *testing.T) {
			loc, err := time.LoadLocation(zone)
			if err != nil {
				t.Skipf("saat dilimi verisi yok: %v", err)
			}
			today := time.Date(2025, time.June, 1, 0, 30, 0, 0, loc)
			p := NewPicker("2025-06-15", today, nil)

			var hits []DayCell
			for _, c := range p.Grid() {
				if p.IsSelected(c) {
					hits = append(hits, c)
				}
			}
			require.Len(t, hits, 1)
			assert.Equal(t, DayCell{Day: 15, InViewedMonth: true}, hits[0])
		})
	}
}

func TestPicker_SelectDayCurrentMonth(t *testing.T) {
	var got []string
	p := PickerAt(2025, 5, "", func(d string) { got = append(got, d) })

	p.SelectDay(DayCell{Day: 15, InViewedMonth: true})
	assert.Equal(t, []string{"2025-06-15"}, got)
	assert.Equal(t, "2025-06-15", p.Selected())
	y, m := p.View()
	assert.Equal(t, 2025, y)
	assert.Equal(t, 5, m)
	assert.Equal(t, 0, p.Direction())
}

func TestPicker_SelectDayAdjacentMonthShiftsView(t *testing.T) {
	var got string
	p := PickerAt(2025, 0, "", func(d string) { got = d })

	p.SelectDay(DayCell{Day: 30, MonthOffset: -1})
	assert.Equal(t, "2024-12-30", got)
	y, m := p.View()
	assert.Equal(t, 2024, y)
	assert.Equal(t, 11, m)
	assert.Equal(t, -1, p.Direction())

	// seçilen gün artık görüntülenen ayın içinde
	hits := 0
	for _, c := range p.Grid() {
		if p.IsSelected(c) {
			hits++
			assert.True(t, c.InViewedMonth)
		}
	}
	assert.Equal(t, 1, hits)

	p = PickerAt(2025, 11, "", func(d string) { got = d })
	p.SelectDay(DayCell{Day: 2, MonthOffset: 1})
	assert.Equal(t, "2026-01-02", got)
	y, m = p.View()
	assert.Equal(t, 2026, y)
	assert.Equal(t, 0, m)
	assert.Equal(t, 1, p.Direction())
}

func TestPicker_AdjacentCellOfSelectedDateIsSelected(t *testing.T) {
	// 31 Mayıs 2025, Haziran görünümünde yok; Temmuz başı ise Haziran ızgarasında var.
	p := PickerAt(2025, 5, "2025-07-03", nil)
	n := 0
	for _, c := range p.Grid() {
		if p.IsSelected(c) {
			n++
			assert.Equal(t, DayCell{Day: 3, MonthOffset: 1}, c)
		}
	}
	assert.Equal(t, 1, n)
}
