package domain

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFavorites_Idempotent(t *testing.T) {
	t.Parallel()

	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()
	e := Exercise{Name: "bench press"}

	e.AddFavorite(userA)
	e.AddFavorite(userA) // already present: no-op
	if len(e.Favorites) != 1 {
		t.Fatalf("favorites size = %d after double add, want 1", len(e.Favorites))
	}

	e.AddFavorite(userB)
	if len(e.Favorites) != 2 {
		t.Fatalf("favorites size = %d, want 2", len(e.Favorites))
	}

	e.RemoveFavorite(userA)
	if len(e.Favorites) != 1 || e.IsFavoritedBy(userA) {
		t.Fatalf("userA still favorited after remove: %v", e.Favorites)
	}

	// Removing a user not in the set is a no-op.
	e.RemoveFavorite(userA)
	if len(e.Favorites) != 1 || !e.IsFavoritedBy(userB) {
		t.Fatalf("second remove changed the set: %v", e.Favorites)
	}
}
