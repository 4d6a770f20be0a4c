package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/auth"
	"marseille-immobilier/internal/models"
	"marseille-immobilier/internal/storage"

	"gorm.io/gorm"
)

// AgencyService owns the agency directory: CRUD, display ordering and the
// per-agency image gallery.
type AgencyService struct {
	db    *gorm.DB
	files *storage.FileStore
}

func NewAgencyService(db *gorm.DB, files *storage.FileStore) *AgencyService {
	return &AgencyService{db: db, files: files}
}

type AgencyInput struct {
	Name        string `validate:"required,max=100"`
	City        string `validate:"required,max=100"`
	Website     string `validate:"required,max=200"`
	Description string
	Plan        models.Plan
	IsActive    bool
}

func (in *AgencyInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.Website = strings.TrimSpace(in.Website)
	in.Description = strings.TrimSpace(in.Description)

	if err := validateInput(in); err != nil {
		return err
	}
	if !in.Plan.Valid() {
		return fmt.Errorf("%w: unknown plan %q", apperr.ErrValidation, in.Plan)
	}
	if !strings.HasPrefix(in.Website, "http://") && !strings.HasPrefix(in.Website, "https://") {
		in.Website = "https://" + in.Website
	}
	return nil
}

// List returns active agencies in public display order: premium plan
// first, then sort_order, ties broken by id. plan filters when non-empty.
func (s *AgencyService) List(plan models.Plan) ([]models.Agency, error) {
	q := s.db.Where("is_active = ?", true)
	if plan != "" {
		q = q.Where("plan = ?", plan)
	}

	var agencies []models.Agency
	if err := q.Order("plan desc, sort_order asc, id asc").Find(&agencies).Error; err != nil {
		return nil, fmt.Errorf("%w: list agencies: %v", apperr.ErrStorage, err)
	}
	return agencies, nil
}

// ListAll returns every agency, active or not, for the admin panel.
func (s *AgencyService) ListAll(identity auth.Identity) ([]models.Agency, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	var agencies []models.Agency
	if err := s.db.Order("sort_order asc, id asc").Find(&agencies).Error; err != nil {
		return nil, fmt.Errorf("%w: list agencies: %v", apperr.ErrStorage, err)
	}
	return agencies, nil
}

func (s *AgencyService) Get(id uint) (*models.Agency, error) {
	var agency models.Agency
	if err := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc, id asc")
	}).First(&agency, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: agency %d", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: get agency: %v", apperr.ErrStorage, err)
	}
	return &agency, nil
}

// Create stores the uploaded images first, then inserts the row in one
// transaction that also assigns sort_order = max(existing)+1. If the
// transaction fails the stored files are removed again, so no half-created
// agency survives.
func (s *AgencyService) Create(identity auth.Identity, in AgencyInput, logo, cover *multipart.FileHeader) (*models.Agency, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	logoRef, coverRef, err := s.saveImages(logo, cover)
	if err != nil {
		return nil, err
	}

	agency := models.Agency{
		Name:        in.Name,
		City:        in.City,
		Website:     in.Website,
		Description: in.Description,
		Plan:        in.Plan,
		LogoRef:     logoRef,
		CoverRef:    coverRef,
		IsActive:    in.IsActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		row := tx.Model(&models.Agency{}).Select("COALESCE(MAX(sort_order), 0)").Row()
		if err := row.Scan(&maxOrder); err != nil {
			return err
		}
		agency.SortOrder = maxOrder + 1
		return tx.Create(&agency).Error
	})
	if err != nil {
		s.files.Remove(storage.KindLogo, logoRef)
		s.files.Remove(storage.KindCover, coverRef)
		return nil, fmt.Errorf("%w: create agency: %v", apperr.ErrStorage, err)
	}

	return &agency, nil
}

// Update replaces the text fields and, when new images are uploaded, the
// image references. Old files are deleted only after the row is committed
// so a failed update never leaves a dangling reference.
func (s *AgencyService) Update(identity auth.Identity, id uint, in AgencyInput, logo, cover *multipart.FileHeader) (*models.Agency, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var agency models.Agency
	if err := s.db.First(&agency, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: agency %d", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: get agency: %v", apperr.ErrStorage, err)
	}

	logoRef, coverRef, err := s.saveImages(logo, cover)
	if err != nil {
		return nil, err
	}

	oldLogo, oldCover := "", ""
	agency.Name = in.Name
	agency.City = in.City
	agency.Website = in.Website
	agency.Description = in.Description
	agency.Plan = in.Plan
	agency.IsActive = in.IsActive
	if logoRef != "" {
		oldLogo = agency.LogoRef
		agency.LogoRef = logoRef
	}
	if coverRef != "" {
		oldCover = agency.CoverRef
		agency.CoverRef = coverRef
	}

	if err := s.db.Save(&agency).Error; err != nil {
		s.files.Remove(storage.KindLogo, logoRef)
		s.files.Remove(storage.KindCover, coverRef)
		return nil, fmt.Errorf("%w: update agency: %v", apperr.ErrStorage, err)
	}

	// committed; now the replaced files can go
	s.files.Remove(storage.KindLogo, oldLogo)
	s.files.Remove(storage.KindCover, oldCover)

	return &agency, nil
}

// Delete removes the agency, its gallery rows and all stored files.
// Deleting an id that does not exist is a no-op.
func (s *AgencyService) Delete(identity auth.Identity, id uint) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	var agency models.Agency
	if err := s.db.Preload("Images").First(&agency, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("%w: get agency: %v", apperr.ErrStorage, err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("agency_id = ?", agency.ID).Delete(&models.AgencyImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&agency).Error
	})
	if err != nil {
		return fmt.Errorf("%w: delete agency: %v", apperr.ErrStorage, err)
	}

	s.files.Remove(storage.KindLogo, agency.LogoRef)
	s.files.Remove(storage.KindCover, agency.CoverRef)
	for _, img := range agency.Images {
		s.files.Remove(storage.KindGallery, img.FileRef)
	}
	return nil
}

// Reorder rewrites sort_order so that ids[i] gets position i. The id list
// must be an exact permutation of all current agencies, hidden ones
// included, since the admin list the order comes from shows every row;
// anything else rejects and leaves the previous order untouched.
func (s *AgencyService) Reorder(identity auth.Identity, ids []uint) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var current []uint
		if err := tx.Model(&models.Agency{}).Pluck("id", &current).Error; err != nil {
			return fmt.Errorf("%w: load agency ids: %v", apperr.ErrStorage, err)
		}

		if err := checkPermutation(ids, current); err != nil {
			return fmt.Errorf("agency reorder: %w", err)
		}

		for idx, id := range ids {
			if err := tx.Model(&models.Agency{}).Where("id = ?", id).Update("sort_order", idx).Error; err != nil {
				return fmt.Errorf("%w: reorder agency %d: %v", apperr.ErrStorage, id, err)
			}
		}
		return nil
	})
}

// Counts returns (total, active) for the dashboard.
func (s *AgencyService) Counts(identity auth.Identity) (int64, int64, error) {
	if err := requireAdmin(identity); err != nil {
		return 0, 0, err
	}

	var total, active int64
	if err := s.db.Model(&models.Agency{}).Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("%w: count agencies: %v", apperr.ErrStorage, err)
	}
	if err := s.db.Model(&models.Agency{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, fmt.Errorf("%w: count agencies: %v", apperr.ErrStorage, err)
	}
	return total, active, nil
}

func (s *AgencyService) saveImages(logo, cover *multipart.FileHeader) (string, string, error) {
	var logoRef, coverRef string
	var err error

	if logo != nil {
		if logoRef, err = s.files.Save(logo, storage.KindLogo); err != nil {
			return "", "", err
		}
	}
	if cover != nil {
		if coverRef, err = s.files.Save(cover, storage.KindCover); err != nil {
			s.files.Remove(storage.KindLogo, logoRef)
			return "", "", err
		}
	}
	return logoRef, coverRef, nil
}

// checkPermutation verifies that got is exactly the set want, no ids
// missing, extra or repeated.
func checkPermutation(got, want []uint) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: expected %d ids, got %d", apperr.ErrValidation, len(want), len(got))
	}

	wanted := make(map[uint]bool, len(want))
	for _, id := range want {
		wanted[id] = true
	}
	for _, id := range got {
		if !wanted[id] {
			return fmt.Errorf("%w: id %d is stale or repeated", apperr.ErrValidation, id)
		}
		delete(wanted, id)
	}
	return nil
}
