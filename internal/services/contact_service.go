package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/validation"
)

type ContactService struct {
	contacts models.ContactRepo
}

func NewContactService(contacts models.ContactRepo) *ContactService {
	return &ContactService{
		contacts: contacts,
	}
}

func (cs *ContactService) Submit(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if result := validation.Struct(contact); !result.OK() {
		return nil, &validation.Error{Result: result}
	}
	return cs.contacts.CreateContact(ctx, contact)
}

func (cs *ContactService) List(ctx context.Context, filter models.ContactFilter) ([]*models.Contact, error) {
	return cs.contacts.ListContacts(ctx, filter)
}

func (cs *ContactService) Get(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	return cs.contacts.GetContactByID(ctx, id)
}

func (cs *ContactService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Contact, error) {
	if !models.ValidContactStatus(status) {
		return nil, ErrInvalidStatus
	}
	return cs.contacts.UpdateContactStatus(ctx, id, status)
}

func (cs *ContactService) Recent(ctx context.Context, limit int) ([]*models.Contact, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit")
	}
	return cs.contacts.RecentContacts(ctx, limit)
}
