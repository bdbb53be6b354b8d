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

// PropertyRepository abstracts property persistence so handlers can be tested
// without a live Mongo instance.
type PropertyRepository interface {
	Insert(ctx context.Context, p *models.Property) error
	Find(ctx context.Context, filter query.PropertyFilter, page query.Page) ([]models.Property, error)
	Count(ctx context.Context, filter query.PropertyFilter) (int64, error)
	FindByID(ctx context.Context, id string) (*models.Property, error)
	Replace(ctx context.Context, id string, p *models.Property) error
	Delete(ctx context.Context, id string) (*models.Property, error)
}

type mongoPropertyRepository struct {
	collection *mongo.Collection
}

func NewMongoPropertyRepository(collection *mongo.Collection) PropertyRepository {
	return &mongoPropertyRepository{collection: collection}
}

func (r *mongoPropertyRepository) Insert(ctx context.Context, p *models.Property) error {
	_, err := r.collection.InsertOne(ctx, p)
	return err
}

func (r *mongoPropertyRepository) Find(ctx context.Context, filter query.PropertyFilter, page query.Page) ([]models.Property, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, filter.BSON(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *mongoPropertyRepository) Count(ctx context.Context, filter query.PropertyFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, filter.BSON())
}

func (r *mongoPropertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMalformedID
	}

	var p models.Property
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoPropertyRepository) Replace(ctx context.Context, id string, p *models.Property) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrMalformedID
	}

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPropertyRepository) Delete(ctx context.Context, id string) (*models.Property, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMalformedID
	}

	var p models.Property
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
