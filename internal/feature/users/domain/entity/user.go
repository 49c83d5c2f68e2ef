// Package entity defines the domain entities for the users feature.
package entity

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a stored user record.
type User struct {
	// ID is the unique identifier assigned by the store on creation.
	// It is empty before the user has been persisted.
	ID string

	// Name is the user's display name.
	Name string

	// Email is the user's email address. At most one user holds a given
	// email at any time; the rule is enforced by the usecase layer, not
	// by the store.
	Email string
}

// ErrNilDocument is returned when a user is built from an absent document.
var ErrNilDocument = errors.New("cannot build user from nil document")

// FromDocument builds a User from a raw persisted document. A missing
// identifier yields an empty ID, while a missing name or email field is
// treated as a malformed document.
func FromDocument(doc bson.M) (*User, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	name, ok := doc["name"].(string)
	if !ok {
		return nil, fmt.Errorf("user document is missing the name field")
	}
	email, ok := doc["email"].(string)
	if !ok {
		return nil, fmt.Errorf("user document is missing the email field")
	}
	return &User{
		ID:    stringifyID(doc["_id"]),
		Name:  name,
		Email: email,
	}, nil
}

// stringifyID converts the store-native identifier to its canonical
// string form. An absent identifier converts to an empty string.
func stringifyID(id any) string {
	switch v := id.(type) {
	case bson.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}
