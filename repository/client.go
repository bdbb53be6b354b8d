package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dda-estates/realestate-backend/models"
	"github.com/dda-estates/realestate-backend/query"
)

type ClientRepository interface {
	Insert(ctx context.Context, c *models.Client) error
	Find(ctx context.Context, filter query.ClientFilter, page query.Page) ([]models.Client, error)
	Count(ctx context.Context, filter query.ClientFilter) (int64, error)
	FindByID(ctx context.Context, id string) (*models.Client, error)
	Replace(ctx context.Context, id string, c *models.Client) error
	Delete(ctx context.Context, id string) (*models.Client, error)
}

type mongoClientRepository struct {
	collection *mongo.Collection
}

func NewMongoClientRepository(collection *mongo.Collection) ClientRepository {
	return &mongoClientRepository{collection: collection}
}

func (r *mongoClientRepository) Insert(ctx context.Context, c *models.Client) error {
	_, err := r.collection.InsertOne(ctx, c)
	return err
}

func (r *mongoClientRepository) Find(ctx context.Context, filter query.ClientFilter, page query.Page) ([]models.Client, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, filter.BSON(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *mongoClientRepository) Count(ctx context.Context, filter query.ClientFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, filter.BSON())
}

func (r *mongoClientRepository) FindByID(ctx context.Context, id string) (*models.Client, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMalformedID
	}

	var c models.Client
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoClientRepository) Replace(ctx context.Context, id string, c *models.Client) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrMalformedID
	}

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoClientRepository) Delete(ctx context.Context, id string) (*models.Client, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMalformedID
	}

	var c models.Client
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
