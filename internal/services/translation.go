package services

import (
	"errors"
	"fmt"
	"strings"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/auth"
	"marseille-immobilier/internal/models"

	"gorm.io/gorm"
)

// TranslationService resolves UI string keys per language with a fixed
// fallback chain: requested language, default language, raw key.
type TranslationService struct {
	db          *gorm.DB
	defaultLang string
}

func NewTranslationService(db *gorm.DB, defaultLang string) *TranslationService {
	return &TranslationService{db: db, defaultLang: defaultLang}
}

func (s *TranslationService) DefaultLanguage() string {
	return s.defaultLang
}

// Resolve never fails: a key with no translation in either language comes
// back verbatim, visible on the page as a placeholder.
func (s *TranslationService) Resolve(key, lang string) string {
	if value, ok := s.lookup(key, lang); ok {
		return value
	}
	if lang != s.defaultLang {
		if value, ok := s.lookup(key, s.defaultLang); ok {
			return value
		}
	}
	return key
}

func (s *TranslationService) lookup(key, lang string) (string, bool) {
	var t models.Translation
	err := s.db.Where("key = ? AND language = ?", key, lang).First(&t).Error
	if err != nil {
		return "", false
	}
	return t.Value, true
}

// Languages returns the distinct language codes present in the catalog.
func (s *TranslationService) Languages() ([]string, error) {
	var langs []string
	err := s.db.Model(&models.Translation{}).Distinct("language").Order("language asc").Pluck("language", &langs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list languages: %v", apperr.ErrStorage, err)
	}
	if len(langs) == 0 {
		langs = []string{s.defaultLang}
	}
	return langs, nil
}

// ListForLanguage returns the catalog of one language for the admin editor.
func (s *TranslationService) ListForLanguage(identity auth.Identity, lang string) ([]models.Translation, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	var list []models.Translation
	if err := s.db.Where("language = ?", lang).Order("key asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("%w: list translations: %v", apperr.ErrStorage, err)
	}
	return list, nil
}

// Upsert creates or replaces the value for (key, language).
func (s *TranslationService) Upsert(identity auth.Identity, lang, key, value string) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	lang = strings.TrimSpace(lang)
	key = strings.TrimSpace(key)
	if lang == "" || key == "" || strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: language, key and value are required", apperr.ErrValidation)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var t models.Translation
		err := tx.Where("key = ? AND language = ?", key, lang).First(&t).Error
		switch {
		case err == nil:
			if err := tx.Model(&t).Update("value", value).Error; err != nil {
				return fmt.Errorf("%w: update translation: %v", apperr.ErrStorage, err)
			}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			t = models.Translation{Key: key, Language: lang, Value: value}
			if err := tx.Create(&t).Error; err != nil {
				return fmt.Errorf("%w: create translation: %v", apperr.ErrStorage, err)
			}
			return nil
		default:
			return fmt.Errorf("%w: lookup translation: %v", apperr.ErrStorage, err)
		}
	})
}
