package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactRepo interface {
	CreateContact(ctx context.Context, contact *Contact) (*Contact, error)
	ListContacts(ctx context.Context, filter ContactFilter) ([]*Contact, error)
	GetContactByID(ctx context.Context, id primitive.ObjectID) (*Contact, error)
	UpdateContactStatus(ctx context.Context, id primitive.ObjectID, status string) (*Contact, error)
	CountContacts(ctx context.Context, status string) (int64, error)
	RecentContacts(ctx context.Context, limit int) ([]*Contact, error)
}

func (mdb *MongodbRepo) CreateContact(ctx context.Context, contact *Contact) (*Contact, error) {
	if err := contact.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare message for creation: %w", err)
	}

	col, err := mdb.GetCollection(ctx, DBName, ContactsColName)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if _, err := col.InsertOne(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to insert message into database: %w", err)
	}
	return contact, nil
}

func (mdb *MongodbRepo) ListContacts(ctx context.Context, filter ContactFilter) ([]*Contact, error) {
	col, err := mdb.GetCollection(ctx, DBName, ContactsColName)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"first_name": re},
			bson.M{"last_name": re},
			bson.M{"email": re},
			bson.M{"subject": re},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding messages: %v", err)
	}
	defer cursor.Close(ctx)

	var contacts []*Contact
	for cursor.Next(ctx) {
		var ct Contact
		if err := cursor.Decode(&ct); err != nil {
			return nil, fmt.Errorf("error decoding message: %v", err)
		}
		contacts = append(contacts, &ct)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return contacts, nil
}

func (mdb *MongodbRepo) GetContactByID(ctx context.Context, id primitive.ObjectID) (*Contact, error) {
	col, err := mdb.GetCollection(ctx, DBName, ContactsColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	var contact Contact
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find message by ID: %v", err)
	}
	return &contact, nil
}

func (mdb *MongodbRepo) UpdateContactStatus(ctx context.Context, id primitive.ObjectID, status string) (*Contact, error) {
	col, err := mdb.GetCollection(ctx, DBName, ContactsColName)
	if err != nil {
		return nil, fmt.Errorf("failed to update message status: %w", err)
	}

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Contact
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update message status: %v", err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) CountContacts(ctx context.Context, status string) (int64, error) {
	col, err := mdb.GetCollection(ctx, DBName, ContactsColName)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	count, err := col.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("error counting messages: %v", err)
	}
	return count, nil
}

func (mdb *MongodbRepo) RecentContacts(ctx context.Context, limit int) ([]*Contact, error) {
	col, err := mdb.GetCollection(ctx, DBName, ContactsColName)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent messages: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding recent messages: %v", err)
	}
	defer cursor.Close(ctx)

	var contacts []*Contact
	for cursor.Next(ctx) {
		var ct Contact
		if err := cursor.Decode(&ct); err != nil {
			return nil, fmt.Errorf("error decoding message: %v", err)
		}
		contacts = append(contacts, &ct)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return contacts, nil
}
