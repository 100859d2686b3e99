package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DBName = "elation"

	UsersColName     = "users"
	BookingsColName  = "bookings"
	ContactsColName  = "contacts"
	ServicesColName  = "services"
	PortfolioColName = "portfolio"
	PackagesColName  = "packages"
	AboutColName     = "about"
)

// ErrNotFound is returned by repos when a lookup matches no document.
var ErrNotFound = fmt.Errorf("not found")

// MongodbRepo implements every entity repo interface against a shared client.
type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	col := mdb.mongodbClient.Database(dbName).Collection(colName)
	return col, nil
}
