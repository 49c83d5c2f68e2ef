package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestFromDocument(t *testing.T) {
	t.Run("document with ObjectID identifier", func(t *testing.T) {
		oid := bson.NewObjectID()
		doc := bson.M{"_id": oid, "name": "Ada", "email": "ada@example.com"}

		user, err := FromDocument(doc)

		require.NoError(t, err)
		assert.Equal(t, oid.Hex(), user.ID)
		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("document with string identifier", func(t *testing.T) {
		doc := bson.M{"_id": "abc123", "name": "Ada", "email": "ada@example.com"}

		user, err := FromDocument(doc)

		require.NoError(t, err)
		assert.Equal(t, "abc123", user.ID)
	})

	t.Run("document without identifier", func(t *testing.T) {
		doc := bson.M{"name": "Ada", "email": "ada@example.com"}

		user, err := FromDocument(doc)

		require.NoError(t, err)
		assert.Empty(t, user.ID, "absent identifier should convert to an empty string")
	})

	t.Run("nil document", func(t *testing.T) {
		user, err := FromDocument(nil)

		assert.ErrorIs(t, err, ErrNilDocument)
		assert.Nil(t, user)
	})

	t.Run("document missing name", func(t *testing.T) {
		doc := bson.M{"_id": bson.NewObjectID(), "email": "ada@example.com"}

		_, err := FromDocument(doc)

		assert.Error(t, err)
	})

	t.Run("document missing email", func(t *testing.T) {
		doc := bson.M{"_id": bson.NewObjectID(), "name": "Ada"}

		_, err := FromDocument(doc)

		assert.Error(t, err)
	})
}
