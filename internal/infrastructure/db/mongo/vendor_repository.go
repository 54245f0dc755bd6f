package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
)

const vendorsCollection = "vendors"

// MongoVendorRepository persists vendor principals. Uniqueness of
// name/email/mobile is enforced by the collection's unique indexes.
type MongoVendorRepository struct {
	coll *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) *MongoVendorRepository {
	return &MongoVendorRepository{coll: db.Collection(vendorsCollection)}
}

type mongoVendor struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Role         string `bson:"role"`
	PasswordHash string `bson:"password_hash"`
	Email        string `bson:"email"`
	Gender       string `bson:"gender"`
	Mobile       string `bson:"mobile"`
	Address      string `bson:"address"`
}

func toMongoVendor(v *domain.Vendor) mongoVendor {
	return mongoVendor{
		ID:           v.ID,
		Name:         v.Name,
		Role:         v.Role,
		PasswordHash: v.PasswordHash,
		Email:        v.Email,
		Gender:       v.Gender,
		Mobile:       v.Mobile,
		Address:      v.Address,
	}
}

func (m mongoVendor) toDomain() *domain.Vendor {
	return &domain.Vendor{
		ID:           m.ID,
		Name:         m.Name,
		Role:         m.Role,
		PasswordHash: m.PasswordHash,
		Email:        m.Email,
		Gender:       m.Gender,
		Mobile:       m.Mobile,
		Address:      m.Address,
	}
}

func (r *MongoVendorRepository) Insert(ctx context.Context, vendor *domain.Vendor) error {
	if _, err := r.coll.InsertOne(ctx, toMongoVendor(vendor)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateKey
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

func (r *MongoVendorRepository) FindByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	var mv mongoVendor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("find vendor: %w", err)
	}
	return mv.toDomain(), nil
}

func (r *MongoVendorRepository) FindAny(ctx context.Context, name, email, mobile string) (*domain.Vendor, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"name": name},
		bson.M{"email": email},
		bson.M{"mobile": mobile},
	}}

	var mv mongoVendor
	if err := r.coll.FindOne(ctx, filter).Decode(&mv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("find vendor: %w", err)
	}
	return mv.toDomain(), nil
}

func (r *MongoVendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": vendor.ID}, toMongoVendor(vendor))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateKey
		}
		return fmt.Errorf("update vendor: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVendorNotFound
	}
	return nil
}
