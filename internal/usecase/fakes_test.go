package usecase

import (
	"fmt"
	"io"
	"strings"
	"time"

	"contact_service/internal/domain"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeContactRepo mimics the postgres repository in memory, including the
// global uniqueness of phone numbers.
type fakeContactRepo struct {
	contacts []*domain.Contact
	nextID   int64
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{}
}

func (f *fakeContactRepo) find(owner, phnumber string) *domain.Contact {
	for _, c := range f.contacts {
		if c.Owner == owner && c.Phnumber == phnumber {
			return c
		}
	}
	return nil
}

func (f *fakeContactRepo) CreateContact(contact *domain.Contact) (*domain.Contact, error) {
	for _, c := range f.contacts {
		if c.Phnumber == contact.Phnumber {
			return nil, fmt.Errorf("contact with phone number %s %w", contact.Phnumber, domain.ErrConflict)
		}
	}
	f.nextID++
	stored := *contact
	stored.ID = f.nextID
	stored.Active = true
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.contacts = append(f.contacts, &stored)

	result := stored
	return &result, nil
}

func (f *fakeContactRepo) ListActive(owner string) ([]domain.Contact, error) {
	return f.list(owner, true), nil
}

func (f *fakeContactRepo) ListDeleted(owner string) ([]domain.Contact, error) {
	return f.list(owner, false), nil
}

func (f *fakeContactRepo) list(owner string, active bool) []domain.Contact {
	contacts := []domain.Contact{}
	for _, c := range f.contacts {
		if c.Owner == owner && c.Active == active {
			contacts = append(contacts, *c)
		}
	}
	return contacts
}

func (f *fakeContactRepo) SearchByName(owner, name string) ([]domain.Contact, error) {
	contacts := []domain.Contact{}
	for _, c := range f.contacts {
		if c.Owner == owner && strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			contacts = append(contacts, *c)
		}
	}
	return contacts, nil
}

func (f *fakeContactRepo) GetByPhone(owner, phnumber string) (*domain.Contact, error) {
	if c := f.find(owner, phnumber); c != nil {
		result := *c
		return &result, nil
	}
	return nil, fmt.Errorf("contact with phone number %s %w", phnumber, domain.ErrNotFound)
}

func (f *fakeContactRepo) PhoneExists(phnumber string) (bool, error) {
	for _, c := range f.contacts {
		if c.Phnumber == phnumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeContactRepo) UpdateByPhone(owner, oldPhone string, contact *domain.Contact) (*domain.Contact, error) {
	stored := f.find(owner, oldPhone)
	if stored == nil {
		return nil, fmt.Errorf("contact with phone number %s %w", oldPhone, domain.ErrNotFound)
	}
	for _, c := range f.contacts {
		if c != stored && c.Phnumber == contact.Phnumber {
			return nil, fmt.Errorf("contact with phone number %s %w", contact.Phnumber, domain.ErrConflict)
		}
	}
	stored.Name = contact.Name
	stored.Email = contact.Email
	stored.Phnumber = contact.Phnumber
	stored.UpdatedAt = time.Now()

	result := *stored
	return &result, nil
}

func (f *fakeContactRepo) Deactivate(owner, phnumber string) error {
	for _, c := range f.contacts {
		if c.Owner == owner && c.Phnumber == phnumber && c.Active {
			c.Active = false
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("contact with phone number %s %w", phnumber, domain.ErrNotFound)
}

// fakeUserRepo mimics the users table with its unique email constraint.
type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	if _, exists := f.users[user.Email]; exists {
		return nil, fmt.Errorf("user with email '%s' %w", user.Email, domain.ErrConflict)
	}
	f.nextID++
	stored := *user
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.users[user.Email] = &stored

	result := stored
	return &result, nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*domain.User, error) {
	if u, ok := f.users[email]; ok {
		result := *u
		return &result, nil
	}
	return nil, fmt.Errorf("user with email %s %w", email, domain.ErrNotFound)
}
