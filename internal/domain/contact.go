package domain

import "time"

// Contact is a single address-book entry. Contacts are never physically
// deleted; deactivating one flips Active to false and the row stays behind
// for the "deleted" view.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phnumber  string    `json:"phnumber"`
	Owner     string    `json:"owner"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactUpdate carries the fields of a merge-patch update. An empty string
// means "not supplied": the existing value is kept and the field is not
// re-validated.
type ContactUpdate struct {
	Name     string
	Email    string
	Phnumber string
}

type ContactRepository interface {
	CreateContact(contact *Contact) (*Contact, error)
	ListActive(owner string) ([]Contact, error)
	ListDeleted(owner string) ([]Contact, error)
	SearchByName(owner, name string) ([]Contact, error)
	GetByPhone(owner, phnumber string) (*Contact, error)
	PhoneExists(phnumber string) (bool, error)
	UpdateByPhone(owner, oldPhone string, contact *Contact) (*Contact, error)
	Deactivate(owner, phnumber string) error
}

type ContactUseCase interface {
	CreateContact(owner, name, email, phnumber string) (*Contact, error)
	ListActive(owner string) ([]Contact, error)
	ListDeleted(owner string) ([]Contact, error)
	SearchByName(owner, name string) ([]Contact, error)
	GetByPhone(owner, phnumber string) (*Contact, error)
	UpdateContact(owner, oldPhone string, upd ContactUpdate) (*Contact, error)
	DeactivateContact(owner, phnumber string) error
}
