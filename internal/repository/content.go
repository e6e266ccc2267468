package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
)

var (
	ErrMaterialNotFound = errors.New("material not found")
	ErrLetterNotFound   = errors.New("letter not found")
	ErrDuplicateID      = errors.New("duplicate material id")
)

const (
	materialsDir = "materials"
	lettersName  = "letters"
)

// ContentRepository provides read-only access to the bundled learning content.
// Everything is loaded and validated once at startup.
type ContentRepository struct {
	materials []*entities.Material
	byID      map[string]*entities.Material
	letters   []entities.ArabicLetter
}

// NewContentRepository loads materials from <dir>/materials and letters from
// <dir>/letters.{json,yaml,yml}.
func NewContentRepository(dir string) (*ContentRepository, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	materials, err := loadMaterials(filepath.Join(dir, materialsDir), validate)
	if err != nil {
		return nil, err
	}

	letters, err := loadLetters(dir, validate)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entities.Material, len(materials))
	for _, m := range materials {
		if _, ok := byID[m.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, m.ID)
		}
		byID[m.ID] = m
	}

	return &ContentRepository{
		materials: materials,
		byID:      byID,
		letters:   letters,
	}, nil
}

// ListMaterials returns materials in menu order.
func (r *ContentRepository) ListMaterials() []*entities.Material {
	return r.materials
}

// GetMaterial returns the material with the given id.
func (r *ContentRepository) GetMaterial(id string) (*entities.Material, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, ErrMaterialNotFound
	}
	return m, nil
}

// ListLetters returns all letters in alphabet order.
func (r *ContentRepository) ListLetters() []entities.ArabicLetter {
	return r.letters
}

// GetLetter returns the letter at the given position of ListLetters.
func (r *ContentRepository) GetLetter(index int) (entities.ArabicLetter, error) {
	if index < 0 || index >= len(r.letters) {
		return entities.ArabicLetter{}, ErrLetterNotFound
	}
	return r.letters[index], nil
}

func loadMaterials(dir string, validate *validator.Validate) ([]*entities.Material, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read materials dir: %w", err)
	}

	var materials []*entities.Material
	for _, e := range entries {
		if e.IsDir() || !isContentFile(e.Name()) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		var m entities.Material
		if err := decodeFile(path, &m); err != nil {
			return nil, err
		}
		if err := validate.Struct(&m); err != nil {
			return nil, fmt.Errorf("validate %s: %w", path, err)
		}
		if err := checkAnswers(&m); err != nil {
			return nil, fmt.Errorf("validate %s: %w", path, err)
		}

		materials = append(materials, &m)
	}

	slices.SortStableFunc(materials, func(a, b *entities.Material) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.ID, b.ID)
	})

	return materials, nil
}

// checkAnswers verifies every correct answer index points at an option.
func checkAnswers(m *entities.Material) error {
	for _, q := range m.Quiz {
		if q.CorrectAnswerIndex >= len(q.Options) {
			return fmt.Errorf("question %d: correct answer %d out of %d options", q.ID, q.CorrectAnswerIndex, len(q.Options))
		}
	}
	return nil
}

func loadLetters(dir string, validate *validator.Validate) ([]entities.ArabicLetter, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(dir, lettersName+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		var wrapper struct {
			Letters []entities.ArabicLetter `json:"letters" yaml:"letters" validate:"required,dive"`
		}
		if err := decodeFile(path, &wrapper); err != nil {
			return nil, err
		}
		if err := validate.Struct(&wrapper); err != nil {
			return nil, fmt.Errorf("validate %s: %w", path, err)
		}
		return wrapper.Letters, nil
	}

	return nil, fmt.Errorf("letters file not found in %s", dir)
}

func isContentFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// decodeFile unmarshals a JSON or YAML file depending on its extension.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", path, err)
		}
		return nil
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}
