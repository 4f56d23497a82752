package repository

import (
	"context"
	"errors"

	"github.com/lojinha/loja-microservices/internal/catalog/domain"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrProductNotFound = errors.New("produto não encontrado")

const collectionName = "produtos"

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	InsertProducts(ctx context.Context, products []domain.Product) error
}

type mongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(client *mongo.Client, database string) ProductRepository {
	return &mongoProductRepository{coll: client.Database(database).Collection(collectionName)}
}

func (r *mongoProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		logger.Error("ListProducts: find failed", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		logger.Error("ListProducts: cursor decode failed", err)
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductByID: find failed", err)
		return nil, err
	}
	return &p, nil
}

func (r *mongoProductRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *mongoProductRepository) InsertProducts(ctx context.Context, products []domain.Product) error {
	docs := make([]interface{}, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}
