package calendar

import "time"

// Picker tarih seçicinin görünüm ve seçim durumu.
// Sahibinin durumunu değiştirmez; yeni seçimi onSelect ile bildirir.
type Picker struct {
	viewYear  int
	viewMonth int
	direction int
	selected  string
	onSelect  func(date string)
}

// NewPicker seçili tarihin ayından, seçim yoksa (veya çözülemiyorsa) today'in ayından başlar.
func NewPicker(selectedDate string, today time.Time, onSelect func(date string)) *Picker {
	view := FromTime(today)
	if d, err := ParseDate(selectedDate); err == nil {
		view = d
	}
	return PickerAt(view.Year, view.Month-1, selectedDate, onSelect)
}

// PickerAt görünümü doğrudan (year, month) ile kurar. Taşan ay değerleri normalize edilir.
func PickerAt(year, month int, selectedDate string, onSelect func(date string)) *Picker {
	year, month = normalize(year, month)
	return &Picker{viewYear: year, viewMonth: month, selected: selectedDate, onSelect: onSelect}
}

// View görüntülenen yıl ve ay (0-11).
func (p *Picker) View() (year, month int) { return p.viewYear, p.viewMonth }

// Direction son gezinmenin yönü: -1, 0 veya +1. Yalnızca geçiş animasyonu içindir.
func (p *Picker) Direction() int { return p.direction }

// Selected seçili ISO tarih, yoksa boş.
func (p *Picker) Selected() string { return p.selected }

func (p *Picker) Title() string { return MonthTitle(p.viewYear, p.viewMonth) }

func (p *Picker) Grid() []DayCell { return ComputeGrid(p.viewYear, p.viewMonth) }

func (p *Picker) PrevMonth() {
	p.viewMonth--
	if p.viewMonth < 0 {
		p.viewMonth = 11
		p.viewYear--
	}
	p.direction = -1
}

func (p *Picker) NextMonth() {
	p.viewMonth++
	if p.viewMonth > 11 {
		p.viewMonth = 0
		p.viewYear++
	}
	p.direction = 1
}

// Resolve hücrenin mevcut görünümdeki tarihini döndürür.
func (p *Picker) Resolve(cell DayCell) Date {
	return ResolveCell(p.viewYear, p.viewMonth, cell)
}

// SelectDay hücreyi seçer. Komşu aya ait hücrede görünüm önce o aya kayar.
func (p *Picker) SelectDay(cell DayCell) {
	date := p.Resolve(cell)
	switch {
	case cell.MonthOffset < 0:
		p.PrevMonth()
	case cell.MonthOffset > 0:
		p.NextMonth()
	}
	p.selected = date.String()
	if p.onSelect != nil {
		p.onSelect(p.selected)
	}
}

// IsSelected hücrenin seçili tarih olup olmadığını takvim alanları üzerinden karşılaştırır.
func (p *Picker) IsSelected(cell DayCell) bool {
	if p.selected == "" {
		return false
	}
	sel, err := ParseDate(p.selected)
	if err != nil {
		return false
	}
	return p.Resolve(cell) == sel
}
