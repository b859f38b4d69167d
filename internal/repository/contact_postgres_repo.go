package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"contact_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresContactRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresContactRepository(db *sql.DB, logger *logrus.Logger) domain.ContactRepository {
	return &postgresContactRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresContactRepository) CreateContact(contact *domain.Contact) (*domain.Contact, error) {
	query := `
        INSERT INTO contacts (name, email, phnumber, owner, active)
        VALUES ($1, $2, $3, $4, TRUE)
        RETURNING id, active, created_at, updated_at`

	r.log.Debugf("Repository: Attempting to create contact '%s' for owner '%s'", contact.Name, contact.Owner)

	err := r.db.QueryRow(query, contact.Name, contact.Email, contact.Phnumber, contact.Owner).Scan(
		&contact.ID,
		&contact.Active,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			r.log.Warnf("Repository: Attempted to create contact with duplicate phone number: %s", contact.Phnumber)
			return nil, fmt.Errorf("contact with phone number %s %w", contact.Phnumber, domain.ErrConflict)
		}
		r.log.Errorf("Repository: Failed to create contact '%s': %v", contact.Name, err)
		return nil, fmt.Errorf("could not create contact: %w", err)
	}

	r.log.Infof("Repository: Contact created successfully with ID: %d, phone: %s", contact.ID, contact.Phnumber)
	return contact, nil
}

func (r *postgresContactRepository) ListActive(owner string) ([]domain.Contact, error) {
	return r.listByActivity(owner, true)
}

func (r *postgresContactRepository) ListDeleted(owner string) ([]domain.Contact, error) {
	return r.listByActivity(owner, false)
}

func (r *postgresContactRepository) listByActivity(owner string, active bool) ([]domain.Contact, error) {
	query := `
        SELECT id, name, email, phnumber, owner, active, created_at, updated_at
        FROM contacts
        WHERE active = $1 AND owner = $2`

	rows, err := r.db.Query(query, active, owner)
	if err != nil {
		r.log.Errorf("Repository: Failed to list contacts (active=%t) for owner '%s': %v", active, owner, err)
		return nil, fmt.Errorf("could not list contacts: %w", err)
	}
	defer rows.Close()

	return r.scanContacts(rows)
}

func (r *postgresContactRepository) SearchByName(owner, name string) ([]domain.Contact, error) {
	query := `
        SELECT id, name, email, phnumber, owner, active, created_at, updated_at
        FROM contacts
        WHERE owner = $1 AND name ILIKE $2`

	rows, err := r.db.Query(query, owner, "%"+name+"%")
	if err != nil {
		r.log.Errorf("Repository: Failed to search contacts by name '%s' for owner '%s': %v", name, owner, err)
		return nil, fmt.Errorf("could not search contacts by name: %w", err)
	}
	defer rows.Close()

	return r.scanContacts(rows)
}

func (r *postgresContactRepository) scanContacts(rows *sql.Rows) ([]domain.Contact, error) {
	contacts := []domain.Contact{}
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Phnumber,
			&contact.Owner,
			&contact.Active,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		); err != nil {
			r.log.Errorf("Repository: Failed to scan contact row: %v", err)
			return nil, fmt.Errorf("could not scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}
	return contacts, nil
}

func (r *postgresContactRepository) GetByPhone(owner, phnumber string) (*domain.Contact, error) {
	query := `
        SELECT id, name, email, phnumber, owner, active, created_at, updated_at
        FROM contacts
        WHERE owner = $1 AND phnumber = $2`

	contact := &domain.Contact{}
	err := r.db.QueryRow(query, owner, phnumber).Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phnumber,
		&contact.Owner,
		&contact.Active,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Contact with phone number %s not found for owner '%s'", phnumber, owner)
			return nil, fmt.Errorf("contact with phone number %s %w", phnumber, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get contact by phone %s: %v", phnumber, err)
		return nil, fmt.Errorf("could not get contact by phone: %w", err)
	}

	return contact, nil
}

// PhoneExists checks the whole collection, not just one owner: phone numbers
// are globally unique. The answer is advisory only; the UNIQUE constraint on
// contacts.phnumber is the authoritative guard.
func (r *postgresContactRepository) PhoneExists(phnumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM contacts WHERE phnumber = $1)`

	var exists bool
	if err := r.db.QueryRow(query, phnumber).Scan(&exists); err != nil {
		r.log.Errorf("Repository: Failed to check phone number %s: %v", phnumber, err)
		return false, fmt.Errorf("could not check phone number: %w", err)
	}
	return exists, nil
}

func (r *postgresContactRepository) UpdateByPhone(owner, oldPhone string, contact *domain.Contact) (*domain.Contact, error) {
	query := `
        UPDATE contacts
        SET name = $1, email = $2, phnumber = $3, updated_at = NOW()
        WHERE owner = $4 AND phnumber = $5
        RETURNING id, active, created_at, updated_at`

	r.log.Debugf("Repository: Updating contact %s for owner '%s'", oldPhone, owner)

	err := r.db.QueryRow(query, contact.Name, contact.Email, contact.Phnumber, owner, oldPhone).Scan(
		&contact.ID,
		&contact.Active,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Contact with phone number %s not found for update", oldPhone)
			return nil, fmt.Errorf("contact with phone number %s %w", oldPhone, domain.ErrNotFound)
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			r.log.Warnf("Repository: Phone number %s is already in use", contact.Phnumber)
			return nil, fmt.Errorf("contact with phone number %s %w", contact.Phnumber, domain.ErrConflict)
		}
		r.log.Errorf("Repository: Failed to update contact %s: %v", oldPhone, err)
		return nil, fmt.Errorf("could not update contact: %w", err)
	}

	r.log.Infof("Repository: Contact updated successfully: ID %d", contact.ID)
	return contact, nil
}

// Deactivate is the soft delete: the row stays, active flips to false. A zero
// affected-row count is the valid "nothing to do" outcome, reported as
// ErrNotFound so a second deactivate of the same phone is a no-op failure.
func (r *postgresContactRepository) Deactivate(owner, phnumber string) error {
	query := `
        UPDATE contacts
        SET active = FALSE, updated_at = NOW()
        WHERE owner = $1 AND phnumber = $2 AND active = TRUE`

	result, err := r.db.Exec(query, owner, phnumber)
	if err != nil {
		r.log.Errorf("Repository: Failed to deactivate contact %s: %v", phnumber, err)
		return fmt.Errorf("could not deactivate contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to read affected rows for deactivate of %s: %v", phnumber, err)
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		r.log.Warnf("Repository: No active contact with phone number %s to deactivate for owner '%s'", phnumber, owner)
		return fmt.Errorf("contact with phone number %s %w", phnumber, domain.ErrNotFound)
	}

	r.log.Infof("Repository: Contact %s deactivated for owner '%s'", phnumber, owner)
	return nil
}
