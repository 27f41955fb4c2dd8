package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopease/storefront-api/internal/core/domain"
)

const collectionPromotions = "promotions"

type PromotionRepository struct {
	col *mongo.Collection
}

func NewPromotionRepository(db *mongo.Database) *PromotionRepository {
	return &PromotionRepository{col: db.Collection(collectionPromotions)}
}

func (r *PromotionRepository) Create(ctx context.Context, promo *domain.Promotion) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if promo.ID == "" {
		promo.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, promo); err != nil {
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

func (r *PromotionRepository) FindByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Promotion
	if err := r.col.FindOne(ctx, bson.M{"code": code}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("find promotion: %w", err)
	}
	return &p, nil
}

func (r *PromotionRepository) ListActive(ctx context.Context, at time.Time) ([]*domain.Promotion, error) {
	return r.find(ctx, bson.M{
		"starts_at": bson.M{"$lte": at},
		"ends_at":   bson.M{"$gte": at},
	})
}

func (r *PromotionRepository) List(ctx context.Context) ([]*domain.Promotion, error) {
	return r.find(ctx, bson.M{})
}

func (r *PromotionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPromotionNotFound
	}
	return nil
}

func (r *PromotionRepository) find(ctx context.Context, query bson.M) ([]*domain.Promotion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "ends_at", Value: 1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer cursor.Close(ctx)

	var promos []*domain.Promotion
	for cursor.Next(ctx) {
		var p domain.Promotion
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode promotion: %w", err)
		}
		promos = append(promos, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	return promos, nil
}

// EnsureIndexes creates necessary indexes on the promotions collection.
func (r *PromotionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
