package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/tahsin-quran-bot/internal/repository"
)

func TestMaterialService_Find(t *testing.T) {
	svc := NewMaterialService(testContent())
	ctx := context.Background()

	tests := []struct {
		input string
		want  string
	}{
		{input: "mabadi", want: "mabadi"},
		{input: "  MABADI ", want: "mabadi"},
		{input: "mabdi", want: "mabadi"},
		{input: "sifat huruf", want: "sifat"},
		{input: "makhroj", want: "makhraj"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := svc.Find(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.ID)
		})
	}

	for _, input := range []string{"", "   ", "tajwid lengkap sekali"} {
		_, err := svc.Find(ctx, input)
		require.ErrorIs(t, err, repository.ErrMaterialNotFound, "input %q", input)
	}
}

func TestMaterialService_List(t *testing.T) {
	svc := NewMaterialService(testContent())
	assert.Len(t, svc.List(context.Background()), 3)
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, similarity("sifat", "sifat"), 1e-9)
	assert.InDelta(t, 0.8, similarity("sifat", "sifa"), 1e-9)
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
	assert.Equal(t, "بسم الله", normalize("  بِسْمِ   ٱللَّهِ "))
}
