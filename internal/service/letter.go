package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
)

var ErrInvalidFilter = errors.New("invalid letter filter")

// NoOption marks an unset filter position.
const NoOption = -1

// makhrajGroupOrder is the display order of makhraj groups, keyed by the
// anatomical word of the makhraj name.
var makhrajGroupOrder = []string{"Lisan", "Halq", "Khayshum", "Syafatain"}

// MakhrajGroup is a set of makhraj options sharing an anatomical area.
type MakhrajGroup struct {
	Name    string
	Options []string
}

// LetterFilterOptions lists the values a user can filter letters by.
type LetterFilterOptions struct {
	MakhrajGroups []MakhrajGroup
	Makhraj       []string // MakhrajGroups flattened in display order
	Sifat         []string
	SifatTambahan []string
}

// IndexedLetter is a letter with its position in the full letter list.
type IndexedLetter struct {
	Index int
	entities.ArabicLetter
}

// FilterIndexes identifies a filter by option positions, NoOption for unset.
type FilterIndexes struct {
	Makhraj       int
	Sifat         int
	SifatTambahan int
}

// NoFilter selects no option.
var NoFilter = FilterIndexes{Makhraj: NoOption, Sifat: NoOption, SifatTambahan: NoOption}

type LetterService struct {
	repository ContentRepository
	options    LetterFilterOptions
}

func NewLetterService(repository ContentRepository) *LetterService {
	return &LetterService{
		repository: repository,
		options:    buildFilterOptions(repository.ListLetters()),
	}
}

// Options returns the filter options derived from the letter set.
func (s *LetterService) Options(_ context.Context) LetterFilterOptions {
	return s.options
}

// Get returns a letter by its position in the full list.
func (s *LetterService) Get(_ context.Context, index int) (entities.ArabicLetter, error) {
	return s.repository.GetLetter(index)
}

// Filter returns the letters matching f, keeping their original positions.
func (s *LetterService) Filter(_ context.Context, f entities.LetterFilter) []IndexedLetter {
	f.Query = normalize(f.Query)

	var result []IndexedLetter
	for i, l := range s.repository.ListLetters() {
		if f.Matches(l) {
			result = append(result, IndexedLetter{Index: i, ArabicLetter: l})
		}
	}
	return result
}

// ResolveFilter converts option positions to a filter.
func (s *LetterService) ResolveFilter(idx FilterIndexes, query string) (entities.LetterFilter, error) {
	makhraj, err := pick(s.options.Makhraj, idx.Makhraj)
	if err != nil {
		return entities.LetterFilter{}, err
	}
	sifat, err := pick(s.options.Sifat, idx.Sifat)
	if err != nil {
		return entities.LetterFilter{}, err
	}
	tambahan, err := pick(s.options.SifatTambahan, idx.SifatTambahan)
	if err != nil {
		return entities.LetterFilter{}, err
	}

	return entities.LetterFilter{
		Query:         query,
		Makhraj:       makhraj,
		Sifat:         sifat,
		SifatTambahan: tambahan,
	}, nil
}

// ActiveFilterCount counts the selected option filters.
func (s *LetterService) ActiveFilterCount(f entities.LetterFilter) int {
	return f.ActiveCount()
}

func pick(options []string, idx int) (string, error) {
	if idx == NoOption {
		return "", nil
	}
	if idx < 0 || idx >= len(options) {
		return "", ErrInvalidFilter
	}
	return options[idx], nil
}

func buildFilterOptions(letters []entities.ArabicLetter) LetterFilterOptions {
	var opts LetterFilterOptions

	groups := make(map[string][]string, len(makhrajGroupOrder))
	for _, l := range letters {
		key := makhrajGroupKey(l.Makhraj)
		if !slices.Contains(makhrajGroupOrder, key) || slices.Contains(groups[key], l.Makhraj) {
			continue
		}
		groups[key] = append(groups[key], l.Makhraj)
	}
	for _, name := range makhrajGroupOrder {
		options := groups[name]
		if len(options) == 0 {
			continue
		}
		slices.Sort(options)
		opts.MakhrajGroups = append(opts.MakhrajGroups, MakhrajGroup{Name: name, Options: options})
		opts.Makhraj = append(opts.Makhraj, options...)
	}

	sifatGroups := []func(entities.ArabicLetter) string{
		func(l entities.ArabicLetter) string { return l.Nafas },
		func(l entities.ArabicLetter) string { return l.Lidah },
		func(l entities.ArabicLetter) string { return l.Tebal },
		func(l entities.ArabicLetter) string { return l.Pengucapan },
		func(l entities.ArabicLetter) string { return l.Suara },
	}
	for _, field := range sifatGroups {
		for _, l := range letters {
			if v := field(l); v != "" && !slices.Contains(opts.Sifat, v) {
				opts.Sifat = append(opts.Sifat, v)
			}
		}
	}

	for _, l := range letters {
		if l.SifatImtihan != "" && !slices.Contains(opts.SifatTambahan, l.SifatImtihan) {
			opts.SifatTambahan = append(opts.SifatTambahan, l.SifatImtihan)
		}
	}
	slices.Sort(opts.SifatTambahan)

	return opts
}

// makhrajGroupKey returns the second word of a makhraj name, or the first if there is only one.
func makhrajGroupKey(makhraj string) string {
	words := strings.Split(makhraj, " ")
	if len(words) > 1 {
		return words[1]
	}
	return words[0]
}

// Indexes returns the option positions of f, NoOption for unset or unknown values.
func (s *LetterService) Indexes(f entities.LetterFilter) FilterIndexes {
	return FilterIndexes{
		Makhraj:       indexOf(s.options.Makhraj, f.Makhraj),
		Sifat:         indexOf(s.options.Sifat, f.Sifat),
		SifatTambahan: indexOf(s.options.SifatTambahan, f.SifatTambahan),
	}
}

func indexOf(options []string, v string) int {
	if v == "" {
		return NoOption
	}
	return slices.Index(options, v)
}
