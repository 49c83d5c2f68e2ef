package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"user_service/internal/feature/users/domain/entity"
)

// The public view built from a persisted document must reproduce id, name
// and email exactly, with no storage metadata leaking through.
func TestUserResponseRoundTrip(t *testing.T) {
	oid := bson.NewObjectID()
	doc := bson.M{"_id": oid, "name": "Ada", "email": "ada@example.com"}

	user, err := entity.FromDocument(doc)
	require.NoError(t, err)

	res := NewUserResponse(user)

	assert.Equal(t, UserResponse{ID: oid.Hex(), Name: "Ada", Email: "ada@example.com"}, res)
}

func TestNewUserListResponse(t *testing.T) {
	t.Run("maps every entity", func(t *testing.T) {
		users := []entity.User{
			{ID: "1", Name: "Ada", Email: "ada@example.com"},
			{ID: "2", Name: "Grace", Email: "grace@example.com"},
		}

		res := NewUserListResponse(users)

		require.Len(t, res, 2)
		assert.Equal(t, "Ada", res[0].Name)
		assert.Equal(t, "grace@example.com", res[1].Email)
	})

	t.Run("empty input yields an empty, non-nil slice", func(t *testing.T) {
		res := NewUserListResponse(nil)

		assert.NotNil(t, res)
		assert.Empty(t, res)
	})
}
