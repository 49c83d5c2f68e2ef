// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/usecase"
)

// userMongo is the MongoDB implementation of the UserRepository interface.
// Every operation is a single independent round trip; a malformed ID is
// normalized to "not found" before any query is issued.
type userMongo struct {
	coll *mongo.Collection
}

// Compile-time check that userMongo implements UserRepository.
var _ usecase.UserRepository = (*userMongo)(nil)

// NewUserMongo creates a new userMongo backed by the given collection.
// Constructor for dependency injection.
func NewUserMongo(coll *mongo.Collection) *userMongo {
	return &userMongo{coll: coll}
}

// Create inserts the payload as a new document and re-fetches it by the
// assigned identifier, so the returned entity reflects exactly what was
// persisted.
func (r *userMongo) Create(ctx context.Context, params usecase.CreateUserParams) (*entity.User, error) {
	res, err := r.coll.InsertOne(ctx, bson.M{"name": params.Name, "email": params.Email})
	if err != nil {
		return nil, err
	}
	user, err := r.findOne(ctx, bson.M{"_id": res.InsertedID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.ErrNilDocument
	}
	return user, nil
}

// FindByEmail looks up a user by exact email match.
func (r *userMongo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByID looks up a user by its hex identifier.
func (r *userMongo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// List returns every user in the collection, order unspecified.
func (r *userMongo) List(ctx context.Context) ([]entity.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	users := make([]entity.User, 0, len(docs))
	for _, doc := range docs {
		user, err := entity.FromDocument(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// Delete removes a single user. Success means exactly one document was
// removed.
func (r *userMongo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// Update merges only the supplied fields into the existing document and
// re-fetches the result. An empty payload skips the mutation and returns
// the current state.
func (r *userMongo) Update(ctx context.Context, id string, params usecase.UpdateUserParams) (*entity.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	fields := bson.M{}
	if params.Name != nil {
		fields["name"] = *params.Name
	}
	if params.Email != nil {
		fields["email"] = *params.Email
	}
	if len(fields) > 0 {
		if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}); err != nil {
			return nil, err
		}
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// findOne runs a single FindOne and maps "no documents" to absence.
func (r *userMongo) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc bson.M
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return entity.FromDocument(doc)
}
