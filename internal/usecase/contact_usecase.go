package usecase

import (
	"fmt"
	"strings"

	"contact_service/internal/domain"
	"contact_service/internal/validation"

	"github.com/sirupsen/logrus"
)

type contactUseCase struct {
	contactRepo domain.ContactRepository
	log         *logrus.Logger
}

func NewContactUseCase(repo domain.ContactRepository, logger *logrus.Logger) domain.ContactUseCase {
	return &contactUseCase{
		contactRepo: repo,
		log:         logger,
	}
}

func (uc *contactUseCase) CreateContact(owner, name, email, phnumber string) (*domain.Contact, error) {
	uc.log.Infof("Use Case: Attempting to create contact '%s' for owner '%s'", name, owner)

	if err := validation.ValidateNewContact(name, email, phnumber); err != nil {
		uc.log.Warnf("Use Case: Contact creation failed validation: %v", err)
		return nil, err
	}

	contact := &domain.Contact{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Phnumber: phnumber,
		Owner:    owner,
	}

	createdContact, err := uc.contactRepo.CreateContact(contact)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create contact '%s': %v", name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Contact created successfully. ID: %d, Phone: %s", createdContact.ID, createdContact.Phnumber)
	return createdContact, nil
}

func (uc *contactUseCase) ListActive(owner string) ([]domain.Contact, error) {
	uc.log.Infof("Use Case: Listing active contacts for owner '%s'", owner)

	contacts, err := uc.contactRepo.ListActive(owner)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list active contacts for '%s': %v", owner, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Retrieved %d active contacts for owner '%s'", len(contacts), owner)
	return contacts, nil
}

func (uc *contactUseCase) ListDeleted(owner string) ([]domain.Contact, error) {
	uc.log.Infof("Use Case: Listing deleted contacts for owner '%s'", owner)

	contacts, err := uc.contactRepo.ListDeleted(owner)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list deleted contacts for '%s': %v", owner, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Retrieved %d deleted contacts for owner '%s'", len(contacts), owner)
	return contacts, nil
}

func (uc *contactUseCase) SearchByName(owner, name string) ([]domain.Contact, error) {
	uc.log.Infof("Use Case: Searching contacts by name '%s' for owner '%s'", name, owner)

	contacts, err := uc.contactRepo.SearchByName(owner, name)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to search contacts by name '%s': %v", name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Found %d contacts matching '%s'", len(contacts), name)
	return contacts, nil
}

func (uc *contactUseCase) GetByPhone(owner, phnumber string) (*domain.Contact, error) {
	uc.log.Infof("Use Case: Getting contact by phone %s for owner '%s'", phnumber, owner)

	contact, err := uc.contactRepo.GetByPhone(owner, phnumber)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get contact by phone %s: %v", phnumber, err)
		return nil, err
	}

	return contact, nil
}

// UpdateContact applies merge-patch semantics: only the supplied fields are
// validated and changed; the rest fall back to the stored record. The
// phone-in-use pre-check is a fast path for a better error message; the
// UNIQUE constraint on contacts.phnumber remains the source of truth.
func (uc *contactUseCase) UpdateContact(owner, oldPhone string, upd domain.ContactUpdate) (*domain.Contact, error) {
	uc.log.Infof("Use Case: Attempting to update contact %s for owner '%s'", oldPhone, owner)

	existing, err := uc.contactRepo.GetByPhone(owner, oldPhone)
	if err != nil {
		uc.log.Warnf("Use Case: Update failed, contact %s not found: %v", oldPhone, err)
		return nil, err
	}

	if upd.Name == "" && upd.Email == "" && upd.Phnumber == "" {
		uc.log.Warn("Use Case: Update failed - no fields supplied")
		return nil, fmt.Errorf("%w: at least one field (name, email, or phone number) must be provided for the update", domain.ErrInvalidInput)
	}

	if upd.Phnumber != "" {
		if err := validation.ValidatePhone(upd.Phnumber); err != nil {
			uc.log.Warnf("Use Case: Update failed phone validation: %v", err)
			return nil, err
		}
	}
	if upd.Name != "" {
		if err := validation.ValidateName(upd.Name); err != nil {
			uc.log.Warnf("Use Case: Update failed name validation: %v", err)
			return nil, err
		}
	}
	if upd.Email != "" {
		if err := validation.ValidateEmail(upd.Email); err != nil {
			uc.log.Warnf("Use Case: Update failed email validation: %v", err)
			return nil, err
		}
	}

	if upd.Phnumber != "" && upd.Phnumber != oldPhone {
		inUse, err := uc.contactRepo.PhoneExists(upd.Phnumber)
		if err != nil {
			uc.log.Errorf("Use Case: Failed to check phone number %s: %v", upd.Phnumber, err)
			return nil, err
		}
		if inUse {
			uc.log.Warnf("Use Case: Update failed - phone number %s is already in use", upd.Phnumber)
			return nil, fmt.Errorf("%w: phone number %s is already in use", domain.ErrConflict, upd.Phnumber)
		}
	}

	merged := *existing
	if upd.Name != "" {
		merged.Name = strings.TrimSpace(upd.Name)
	}
	if upd.Email != "" {
		merged.Email = upd.Email
	}
	if upd.Phnumber != "" {
		merged.Phnumber = upd.Phnumber
	}

	updatedContact, err := uc.contactRepo.UpdateByPhone(owner, oldPhone, &merged)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update contact %s: %v", oldPhone, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Contact updated successfully. ID: %d, Phone: %s", updatedContact.ID, updatedContact.Phnumber)
	return updatedContact, nil
}

func (uc *contactUseCase) DeactivateContact(owner, phnumber string) error {
	uc.log.Infof("Use Case: Attempting to deactivate contact %s for owner '%s'", phnumber, owner)

	if err := uc.contactRepo.Deactivate(owner, phnumber); err != nil {
		uc.log.Warnf("Use Case: Repository failed to deactivate contact %s: %v", phnumber, err)
		return err
	}

	uc.log.Infof("Use Case: Contact %s deactivated for owner '%s'", phnumber, owner)
	return nil
}
