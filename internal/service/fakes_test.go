package service

import (
	"context"
	"sync"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/quiz"
	"github.com/aliskhannn/tahsin-quran-bot/internal/repository"
)

type fakeContent struct {
	materials []*entities.Material
	letters   []entities.ArabicLetter
}

func (f *fakeContent) ListMaterials() []*entities.Material { return f.materials }

func (f *fakeContent) GetMaterial(id string) (*entities.Material, error) {
	for _, m := range f.materials {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repository.ErrMaterialNotFound
}

func (f *fakeContent) ListLetters() []entities.ArabicLetter { return f.letters }

func (f *fakeContent) GetLetter(index int) (entities.ArabicLetter, error) {
	if index < 0 || index >= len(f.letters) {
		return entities.ArabicLetter{}, repository.ErrLetterNotFound
	}
	return f.letters[index], nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[int64]entities.User
	err   error
}

func (f *fakeUserRepo) Save(_ context.Context, user *entities.User) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if f.users == nil {
		f.users = make(map[int64]entities.User)
	}
	_, exists := f.users[user.ID]
	f.users[user.ID] = *user
	return !exists, nil
}

// identitySource keeps the original question order.
type identitySource struct{}

func (identitySource) Intn(n int) int { return n - 1 }

func newIdentitySource() quiz.RandSource { return identitySource{} }

func testContent() *fakeContent {
	return &fakeContent{
		materials: []*entities.Material{
			{
				ID:        "mabadi",
				Title:     "Mabadi Ilmu Tajwid",
				Available: true,
				Quiz: []quiz.MultipleChoiceQuestion{
					{ID: 1, Question: "Apa arti tajwid secara bahasa?", Options: []string{"Memperbaiki", "Membaca", "Menulis"}, CorrectAnswerIndex: 0},
					{ID: 2, Question: "Hukum mempelajari ilmu tajwid?", Options: []string{"Sunnah", "Fardhu kifayah"}, CorrectAnswerIndex: 1},
				},
				EssayQuestions: []quiz.EssayQuestion{
					{ID: 1, Question: "Jelaskan hukum membaca dengan tajwid", KeyPoints: []string{"fardhu ain", "setiap muslim"}},
				},
			},
			{ID: "makhraj", Title: "Makhraj Huruf", Available: false},
			{ID: "sifat", Title: "Sifat Huruf", Available: true},
		},
		letters: []entities.ArabicLetter{
			{Letter: "ا", Name: "Alif", Makhraj: "Al-Jauf", Nafas: "Jahr", Suara: "Rakhawah", Lidah: "Istifal", Tebal: "Infitah", Pengucapan: "Ishmat"},
			{Letter: "ب", Name: "Ba", Makhraj: "Kedua Syafatain", Nafas: "Jahr", Suara: "Syiddah", Lidah: "Istifal", Tebal: "Infitah", Pengucapan: "Idzlaq", SifatImtihan: "Qalqalah"},
			{Letter: "ه", Name: "Ha", Makhraj: "Pangkal Halq", Nafas: "Hams", Suara: "Rakhawah", Lidah: "Istifal", Tebal: "Infitah", Pengucapan: "Ishmat"},
			{Letter: "ص", Name: "Shad", Makhraj: "Ujung Lisan", Nafas: "Hams", Suara: "Rakhawah", Lidah: "Isti'la", Tebal: "Ithbaq", Pengucapan: "Ishmat", SifatImtihan: "Shafir"},
			{Letter: "ق", Name: "Qaf", Makhraj: "Pangkal Lisan", Nafas: "Jahr", Suara: "Syiddah", Lidah: "Isti'la", Tebal: "Infitah", Pengucapan: "Ishmat", SifatImtihan: "Qalqalah"},
			{Letter: "ن", Name: "Nun", Makhraj: "Ujung Lisan", Nafas: "Jahr", Suara: "Tawassuth", Lidah: "Istifal", Tebal: "Infitah", Pengucapan: "Idzlaq", SifatImtihan: "Ghunnah"},
			{Letter: "ع", Name: "'Ain", Makhraj: "Tengah Halq", Nafas: "Jahr", Suara: "Tawassuth", Lidah: "Istifal", Tebal: "Infitah", Pengucapan: "Ishmat"},
		},
	}
}
