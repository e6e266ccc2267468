package entities

import "strings"

// ArabicLetter is one of the 29 hijaiyah letters with its articulation point and attributes.
type ArabicLetter struct {
	Letter       string `json:"letter" yaml:"letter" validate:"required"`
	Name         string `json:"name" yaml:"name" validate:"required"`
	Makhraj      string `json:"makhraj" yaml:"makhraj" validate:"required"`
	Nafas        string `json:"nafas" yaml:"nafas" validate:"required"`           // hams or jahr
	Suara        string `json:"suara" yaml:"suara" validate:"required"`           // syiddah, tawassuth or rakhawah
	Lidah        string `json:"lidah" yaml:"lidah" validate:"required"`           // isti'la or istifal
	Tebal        string `json:"tebal" yaml:"tebal" validate:"required"`           // ithbaq or infitah
	Pengucapan   string `json:"pengucapan" yaml:"pengucapan" validate:"required"` // idzlaq or ishmat
	SifatImtihan string `json:"sifatImtihan,omitempty" yaml:"sifatImtihan,omitempty"`
}

// Sifat returns the paired attributes in display order.
func (l ArabicLetter) Sifat() []string {
	return []string{l.Nafas, l.Suara, l.Lidah, l.Tebal, l.Pengucapan}
}

// LetterFilter narrows the letter list. Empty fields match everything.
type LetterFilter struct {
	Query         string
	Makhraj       string
	Sifat         string
	SifatTambahan string
}

// Matches reports whether the letter passes every filter field.
func (f LetterFilter) Matches(l ArabicLetter) bool {
	matchesQuery := f.Query == "" ||
		strings.Contains(l.Letter, f.Query) ||
		strings.Contains(strings.ToLower(l.Name), strings.ToLower(f.Query))

	matchesMakhraj := f.Makhraj == "" || l.Makhraj == f.Makhraj

	matchesSifat := f.Sifat == "" ||
		l.Nafas == f.Sifat ||
		l.Suara == f.Sifat ||
		l.Lidah == f.Sifat ||
		l.Tebal == f.Sifat ||
		l.Pengucapan == f.Sifat

	matchesTambahan := f.SifatTambahan == "" || l.SifatImtihan == f.SifatTambahan

	return matchesQuery && matchesMakhraj && matchesSifat && matchesTambahan
}

// ActiveCount counts the selected option filters, not the text query.
func (f LetterFilter) ActiveCount() int {
	n := 0
	for _, v := range []string{f.Makhraj, f.Sifat, f.SifatTambahan} {
		if v != "" {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no filter is set.
func (f LetterFilter) IsEmpty() bool {
	return f.Query == "" && f.ActiveCount() == 0
}
