package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/auth"
	"marseille-immobilier/internal/models"
	"marseille-immobilier/internal/storage"

	"gorm.io/gorm"
)

// CarouselService manages the homepage carousel: a single settings row and
// an ordered list of image items.
type CarouselService struct {
	db    *gorm.DB
	files *storage.FileStore
}

func NewCarouselService(db *gorm.DB, files *storage.FileStore) *CarouselService {
	return &CarouselService{db: db, files: files}
}

// Get returns the settings plus active items in display order. When the
// carousel is switched off the item list is empty.
func (s *CarouselService) Get() (*models.CarouselSettings, []models.CarouselItem, error) {
	settings, err := s.settings()
	if err != nil {
		return nil, nil, err
	}

	var items []models.CarouselItem
	if settings.IsActive {
		err := s.db.Where("is_active = ?", true).Order("sort_order asc, id asc").Find(&items).Error
		if err != nil {
			return nil, nil, fmt.Errorf("%w: list carousel items: %v", apperr.ErrStorage, err)
		}
	}
	return settings, items, nil
}

// GetAdmin returns the settings and every item for the admin panel.
func (s *CarouselService) GetAdmin(identity auth.Identity) (*models.CarouselSettings, []models.CarouselItem, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, nil, err
	}

	settings, err := s.settings()
	if err != nil {
		return nil, nil, err
	}

	var items []models.CarouselItem
	if err := s.db.Order("sort_order asc, id asc").Find(&items).Error; err != nil {
		return nil, nil, fmt.Errorf("%w: list carousel items: %v", apperr.ErrStorage, err)
	}
	return settings, items, nil
}

func (s *CarouselService) settings() (*models.CarouselSettings, error) {
	var settings models.CarouselSettings
	err := s.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.CarouselSettings{IsActive: true, IntervalSeconds: 5}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("%w: create carousel settings: %v", apperr.ErrStorage, err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get carousel settings: %v", apperr.ErrStorage, err)
	}
	return &settings, nil
}

func (s *CarouselService) UpdateSettings(identity auth.Identity, isActive bool, intervalSeconds int) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}
	if intervalSeconds < 1 || intervalSeconds > 60 {
		return fmt.Errorf("%w: interval must be between 1 and 60 seconds", apperr.ErrValidation)
	}

	settings, err := s.settings()
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"is_active":        isActive,
		"interval_seconds": intervalSeconds,
	}
	if err := s.db.Model(settings).Updates(updates).Error; err != nil {
		return fmt.Errorf("%w: update carousel settings: %v", apperr.ErrStorage, err)
	}
	return nil
}

// AddItem stores the image and appends the item at the end of the order.
func (s *CarouselService) AddItem(identity auth.Identity, upload *multipart.FileHeader, linkURL, altText string) (*models.CarouselItem, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}
	if upload == nil {
		return nil, fmt.Errorf("%w: image is required", apperr.ErrValidation)
	}

	ref, err := s.files.Save(upload, storage.KindCarousel)
	if err != nil {
		return nil, err
	}

	item := models.CarouselItem{
		FileRef:  ref,
		LinkURL:  linkURL,
		AltText:  altText,
		IsActive: true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		row := tx.Model(&models.CarouselItem{}).Select("COALESCE(MAX(sort_order), 0)").Row()
		if err := row.Scan(&maxOrder); err != nil {
			return err
		}
		item.SortOrder = maxOrder + 1
		return tx.Create(&item).Error
	})
	if err != nil {
		s.files.Remove(storage.KindCarousel, ref)
		return nil, fmt.Errorf("%w: create carousel item: %v", apperr.ErrStorage, err)
	}

	return &item, nil
}

// DeleteItem removes an item and its file; idempotent.
func (s *CarouselService) DeleteItem(identity auth.Identity, id uint) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	var item models.CarouselItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("%w: get carousel item: %v", apperr.ErrStorage, err)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("%w: delete carousel item: %v", apperr.ErrStorage, err)
	}
	s.files.Remove(storage.KindCarousel, item.FileRef)
	return nil
}

// ToggleItem flips an item's visibility.
func (s *CarouselService) ToggleItem(identity auth.Identity, id uint) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	var item models.CarouselItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: carousel item %d", apperr.ErrNotFound, id)
		}
		return fmt.Errorf("%w: get carousel item: %v", apperr.ErrStorage, err)
	}

	if err := s.db.Model(&item).Update("is_active", !item.IsActive).Error; err != nil {
		return fmt.Errorf("%w: toggle carousel item: %v", apperr.ErrStorage, err)
	}
	return nil
}

// Reorder applies the exact-permutation rule over all carousel items.
func (s *CarouselService) Reorder(identity auth.Identity, ids []uint) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var current []uint
		if err := tx.Model(&models.CarouselItem{}).Pluck("id", &current).Error; err != nil {
			return fmt.Errorf("%w: load carousel ids: %v", apperr.ErrStorage, err)
		}

		if err := checkPermutation(ids, current); err != nil {
			return fmt.Errorf("carousel reorder: %w", err)
		}

		for idx, id := range ids {
			if err := tx.Model(&models.CarouselItem{}).Where("id = ?", id).Update("sort_order", idx).Error; err != nil {
				return fmt.Errorf("%w: reorder carousel item %d: %v", apperr.ErrStorage, id, err)
			}
		}
		return nil
	})
}
