package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/auth"
	"marseille-immobilier/internal/mailer"
	"marseille-immobilier/internal/models"

	"gorm.io/gorm"
)

// ContactService persists contact form submissions and notifies the admin
// mailbox about each one.
type ContactService struct {
	db       *gorm.DB
	mail     mailer.Mailer
	notifyTo string
}

func NewContactService(db *gorm.DB, mail mailer.Mailer, notifyTo string) *ContactService {
	return &ContactService{db: db, mail: mail, notifyTo: notifyTo}
}

type ContactInput struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"required,email,max=120"`
	Phone   string `validate:"max=20"`
	Subject string `validate:"required,max=200"`
	Body    string `validate:"required"`
}

// SubmitResult reports a saved message plus whether the notification mail
// went out. Notified=false is a degraded success, not a failure.
type SubmitResult struct {
	Message  *models.ContactMessage
	Notified bool
}

// Submit validates and persists a public contact form submission, then
// attempts the notification mail. A mail-transport failure is logged and
// reflected in the result; the stored message is never rolled back for it.
func (s *ContactService) Submit(in ContactInput) (*SubmitResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Body = strings.TrimSpace(in.Body)

	if err := validateInput(&in); err != nil {
		return nil, err
	}

	msg := models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Body:    in.Body,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("%w: save contact message: %v", apperr.ErrStorage, err)
	}

	result := &SubmitResult{Message: &msg, Notified: true}
	if err := s.mail.Send(s.notifyTo, "[Marseille Immobilier] "+in.Subject, s.notificationBody(in)); err != nil {
		log.Printf("warning: contact message %d saved but notification failed: %v", msg.ID, err)
		result.Notified = false
	}
	return result, nil
}

func (s *ContactService) notificationBody(in ContactInput) string {
	phone := in.Phone
	if phone == "" {
		phone = "Non fourni"
	}
	return fmt.Sprintf(
		"Nouveau message de contact depuis Marseille Immobilier\n\n"+
			"Nom: %s\nEmail: %s\nTéléphone: %s\nSujet: %s\n\nMessage:\n%s\n",
		in.Name, in.Email, phone, in.Subject, in.Body,
	)
}

// List returns messages newest first, optionally only unread ones.
func (s *ContactService) List(identity auth.Identity, unreadOnly bool) ([]models.ContactMessage, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	q := s.db.Order("created_at desc, id desc")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var msgs []models.ContactMessage
	if err := q.Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("%w: list messages: %v", apperr.ErrStorage, err)
	}
	return msgs, nil
}

// Recent returns the n newest messages for the dashboard.
func (s *ContactService) Recent(identity auth.Identity, n int) ([]models.ContactMessage, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	var msgs []models.ContactMessage
	if err := s.db.Order("created_at desc, id desc").Limit(n).Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("%w: recent messages: %v", apperr.ErrStorage, err)
	}
	return msgs, nil
}

func (s *ContactService) MarkRead(identity auth.Identity, id uint) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	var msg models.ContactMessage
	if err := s.db.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: message %d", apperr.ErrNotFound, id)
		}
		return fmt.Errorf("%w: get message: %v", apperr.ErrStorage, err)
	}

	if err := s.db.Model(&msg).Update("is_read", true).Error; err != nil {
		return fmt.Errorf("%w: mark message read: %v", apperr.ErrStorage, err)
	}
	return nil
}

// Delete removes a message; deleting a missing id is a no-op.
func (s *ContactService) Delete(identity auth.Identity, id uint) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	if err := s.db.Delete(&models.ContactMessage{}, id).Error; err != nil {
		return fmt.Errorf("%w: delete message: %v", apperr.ErrStorage, err)
	}
	return nil
}

// Counts returns (total, unread) for the dashboard.
func (s *ContactService) Counts(identity auth.Identity) (int64, int64, error) {
	if err := requireAdmin(identity); err != nil {
		return 0, 0, err
	}

	var total, unread int64
	if err := s.db.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("%w: count messages: %v", apperr.ErrStorage, err)
	}
	if err := s.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&unread).Error; err != nil {
		return 0, 0, fmt.Errorf("%w: count messages: %v", apperr.ErrStorage, err)
	}
	return total, unread, nil
}
