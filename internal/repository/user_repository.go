package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/holextra/accounts-api/internal/model"
)

// Gateway is the slice of the connection gateway the repository needs.  It is
// satisfied by *database.Mongo; tests substitute a fake to assert the filter
// shapes sent to the store.
type Gateway interface {
	FindOne(ctx context.Context, coll string, filter bson.M, out any) (bool, error)
	FindAll(ctx context.Context, coll string, filter bson.M, out any) error
	InsertOne(ctx context.Context, coll string, doc any) error
	UpdateOne(ctx context.Context, coll string, filter, fields bson.M) (bool, error)
	DeleteOne(ctx context.Context, coll string, filter bson.M) (bool, error)
}

// UserRepo translates domain operations into document-store queries.  It owns
// no state beyond the collection name and performs no validation; malformed
// input the store accepts is forwarded verbatim.
type UserRepo struct {
	gw         Gateway
	collection string
}

func NewUserRepo(gw Gateway, collection string) *UserRepo {
	return &UserRepo{gw: gw, collection: collection}
}

// GetByEmailPassword fetches the user matching the exact (email, password)
// pair.  Returns (nil, nil) when no such pair exists.
func (r *UserRepo) GetByEmailPassword(ctx context.Context, email, password string) (*model.User, error) {
	var u model.User
	found, err := r.gw.FindOne(ctx, r.collection, bson.M{"email": email, "password": password}, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// GetByEmail fetches a user by email.  Returns (nil, nil) when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	found, err := r.gw.FindOne(ctx, r.collection, bson.M{"email": email}, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// GetByDBID fetches a user by its store-assigned identifier.
func (r *UserRepo) GetByDBID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var u model.User
	found, err := r.gw.FindOne(ctx, r.collection, bson.M{"_id": id}, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// GetAllByEmail returns every user owning the given email.  The duplicate
// check uses it to find records other than the one being updated.
func (r *UserRepo) GetAllByEmail(ctx context.Context, email string) ([]model.User, error) {
	var users []model.User
	if err := r.gw.FindAll(ctx, r.collection, bson.M{"email": email}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetAll returns every user document in the collection.
func (r *UserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.gw.FindAll(ctx, r.collection, bson.M{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Insert writes a new user document.  The store assigns _id; store-native
// errors such as duplicate keys propagate to the caller.
func (r *UserRepo) Insert(ctx context.Context, u model.User) error {
	return r.gw.InsertOne(ctx, r.collection, u)
}

// Update replaces the mutable fields of the document with the given _id and
// returns true only if such a document existed and was modified.  The
// `created` field is deliberately not part of the update.
func (r *UserRepo) Update(ctx context.Context, dbID primitive.ObjectID, u model.User) (bool, error) {
	fields := bson.M{
		"id":         u.ID,
		"email":      u.Email,
		"givenName":  u.GivenName,
		"familyName": u.FamilyName,
		"password":   u.Password,
		"about":      u.About,
	}
	return r.gw.UpdateOne(ctx, r.collection, bson.M{"_id": dbID}, fields)
}

// SaveAuthToken stores the most recent token on the account matching the
// (email, password) pair, not the _id.  Returns true if a document matched
// and was modified.
func (r *UserRepo) SaveAuthToken(ctx context.Context, email, password, token string) (bool, error) {
	return r.gw.UpdateOne(ctx, r.collection,
		bson.M{"email": email, "password": password},
		bson.M{"token": token})
}

// Delete removes the document with the given _id and returns true only if a
// document existed and was removed.
func (r *UserRepo) Delete(ctx context.Context, dbID primitive.ObjectID) (bool, error) {
	return r.gw.DeleteOne(ctx, r.collection, bson.M{"_id": dbID})
}
