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

// AddImages appends uploaded gallery images to an agency. Files failing
// the extension allow-list reject the whole batch before anything is
// stored.
func (s *AgencyService) AddImages(identity auth.Identity, agencyID uint, uploads []*multipart.FileHeader) ([]models.AgencyImage, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: no images provided", apperr.ErrValidation)
	}
	for _, fh := range uploads {
		if !storage.Allowed(fh.Filename) {
			return nil, fmt.Errorf("%w: unsupported image %q", apperr.ErrValidation, fh.Filename)
		}
	}

	var agency models.Agency
	if err := s.db.First(&agency, agencyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: agency %d", apperr.ErrNotFound, agencyID)
		}
		return nil, fmt.Errorf("%w: get agency: %v", apperr.ErrStorage, err)
	}

	refs := make([]string, 0, len(uploads))
	for _, fh := range uploads {
		ref, err := s.files.Save(fh, storage.KindGallery)
		if err != nil {
			for _, r := range refs {
				s.files.Remove(storage.KindGallery, r)
			}
			return nil, err
		}
		refs = append(refs, ref)
	}

	var created []models.AgencyImage
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.AgencyImage{}).Where("agency_id = ?", agency.ID).Count(&count).Error; err != nil {
			return err
		}

		for i, ref := range refs {
			img := models.AgencyImage{
				AgencyID:  agency.ID,
				FileRef:   ref,
				AltText:   "Image de " + agency.Name,
				SortOrder: int(count) + i,
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			created = append(created, img)
		}
		return nil
	})
	if err != nil {
		for _, r := range refs {
			s.files.Remove(storage.KindGallery, r)
		}
		return nil, fmt.Errorf("%w: add agency images: %v", apperr.ErrStorage, err)
	}

	return created, nil
}

// DeleteImage removes one gallery image and its file; idempotent.
func (s *AgencyService) DeleteImage(identity auth.Identity, imageID uint) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	var img models.AgencyImage
	if err := s.db.First(&img, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("%w: get agency image: %v", apperr.ErrStorage, err)
	}

	if err := s.db.Delete(&img).Error; err != nil {
		return fmt.Errorf("%w: delete agency image: %v", apperr.ErrStorage, err)
	}
	s.files.Remove(storage.KindGallery, img.FileRef)
	return nil
}

// SetPrimaryImage makes one gallery image the agency's main image,
// clearing the flag on its siblings.
func (s *AgencyService) SetPrimaryImage(identity auth.Identity, imageID uint) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var img models.AgencyImage
		if err := tx.First(&img, imageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: agency image %d", apperr.ErrNotFound, imageID)
			}
			return fmt.Errorf("%w: get agency image: %v", apperr.ErrStorage, err)
		}

		if err := tx.Model(&models.AgencyImage{}).
			Where("agency_id = ? AND id <> ?", img.AgencyID, img.ID).
			Update("is_primary", false).Error; err != nil {
			return fmt.Errorf("%w: clear primary flags: %v", apperr.ErrStorage, err)
		}
		if err := tx.Model(&img).Update("is_primary", true).Error; err != nil {
			return fmt.Errorf("%w: set primary flag: %v", apperr.ErrStorage, err)
		}
		return nil
	})
}

// ReorderImages applies the same exact-permutation rule as Reorder, scoped
// to one agency's gallery.
func (s *AgencyService) ReorderImages(identity auth.Identity, agencyID uint, ids []uint) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var current []uint
		if err := tx.Model(&models.AgencyImage{}).Where("agency_id = ?", agencyID).Pluck("id", &current).Error; err != nil {
			return fmt.Errorf("%w: load image ids: %v", apperr.ErrStorage, err)
		}

		if err := checkPermutation(ids, current); err != nil {
			return fmt.Errorf("gallery reorder: %w", err)
		}

		for idx, id := range ids {
			if err := tx.Model(&models.AgencyImage{}).Where("id = ?", id).Update("sort_order", idx).Error; err != nil {
				return fmt.Errorf("%w: reorder image %d: %v", apperr.ErrStorage, id, err)
			}
		}
		return nil
	})
}
