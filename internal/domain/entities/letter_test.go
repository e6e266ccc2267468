package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleLetters() []ArabicLetter {
	return []ArabicLetter{
		{Letter: "ب", Name: "Ba", Makhraj: "Asy-Syafatain", Nafas: "Jahr", Suara: "Syiddah", Lidah: "Istifal", Tebal: "Infitah", Pengucapan: "Idzlaq", SifatImtihan: "Qalqalah"},
		{Letter: "ص", Name: "Shad", Makhraj: "Ujung Lisan", Nafas: "Hams", Suara: "Rakhawah", Lidah: "Isti'la", Tebal: "Ithbaq", Pengucapan: "Ishmat", SifatImtihan: "Shafir"},
		{Letter: "ه", Name: "Ha", Makhraj: "Pangkal Halq", Nafas: "Hams", Suara: "Rakhawah", Lidah: "Istifal", Tebal: "Infitah", Pengucapan: "Ishmat"},
	}
}

func TestLetterFilter_Matches(t *testing.T) {
	letters := sampleLetters()

	tests := []struct {
		name   string
		filter LetterFilter
		want   []string
	}{
		{name: "empty matches all", filter: LetterFilter{}, want: []string{"Ba", "Shad", "Ha"}},
		{name: "query by name is case insensitive", filter: LetterFilter{Query: "sHa"}, want: []string{"Shad"}},
		{name: "query by letter", filter: LetterFilter{Query: "ه"}, want: []string{"Ha"}},
		{name: "query substring", filter: LetterFilter{Query: "ha"}, want: []string{"Shad", "Ha"}},
		{name: "makhraj", filter: LetterFilter{Makhraj: "Ujung Lisan"}, want: []string{"Shad"}},
		{name: "sifat from any attribute", filter: LetterFilter{Sifat: "Hams"}, want: []string{"Shad", "Ha"}},
		{name: "sifat tebal", filter: LetterFilter{Sifat: "Ithbaq"}, want: []string{"Shad"}},
		{name: "sifat tambahan", filter: LetterFilter{SifatTambahan: "Qalqalah"}, want: []string{"Ba"}},
		{name: "combined", filter: LetterFilter{Sifat: "Hams", Makhraj: "Pangkal Halq"}, want: []string{"Ha"}},
		{name: "no match", filter: LetterFilter{Sifat: "Hams", SifatTambahan: "Qalqalah"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, l := range letters {
				if tt.filter.Matches(l) {
					got = append(got, l.Name)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLetterFilter_ActiveCount(t *testing.T) {
	assert.Zero(t, LetterFilter{Query: "ba"}.ActiveCount())
	assert.Equal(t, 2, LetterFilter{Makhraj: "x", SifatTambahan: "y"}.ActiveCount())
	assert.Equal(t, 3, LetterFilter{Makhraj: "x", Sifat: "s", SifatTambahan: "y"}.ActiveCount())

	assert.True(t, LetterFilter{}.IsEmpty())
	assert.False(t, LetterFilter{Query: "ba"}.IsEmpty())
}
