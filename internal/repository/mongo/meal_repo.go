package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mealCollectionName = "meals"

// mongoMealRepository implements repository.MealRepository
type mongoMealRepository struct {
	collection *mongo.Collection
}

// NewMongoMealRepository creates a new Meal repository backed by MongoDB.
func NewMongoMealRepository(db *mongo.Database) repository.MealRepository {
	return &mongoMealRepository{
		collection: db.Collection(mealCollectionName),
	}
}

// Create inserts a new meal for its owning user.
func (r *mongoMealRepository) Create(ctx context.Context, meal *domain.Meal) (primitive.ObjectID, error) {
	if meal.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("meal owner is required")
	}

	meal.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	meal.CreatedAt = now
	meal.UpdatedAt = now
	if meal.Date.IsZero() {
		meal.Date = now
	}

	result, err := r.collection.InsertOne(ctx, meal)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a meal by ID within the owner's scope.
func (r *mongoMealRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Meal, error) {
	var meal domain.Meal
	filter := bson.M{"_id": id, "user": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&meal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// GetByUser retrieves a user's meals matching the filter, newest date first.
func (r *mongoMealRepository) GetByUser(ctx context.Context, userID primitive.ObjectID, filter repository.MealFilter) ([]domain.Meal, error) {
	query := bson.M{"user": userID}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Date != nil {
		// Match the whole calendar day of the given date.
		year, month, day := filter.Date.Date()
		start := time.Date(year, month, day, 0, 0, 0, 0, filter.Date.Location())
		query["date"] = bson.M{"$gte": start, "$lt": start.AddDate(0, 0, 1)}
	}
	if filter.IsFavorite != nil {
		query["isFavorite"] = *filter.IsFavorite
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meals := []domain.Meal{}
	if err = cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// Update replaces the mutable fields of a meal within the owner's scope.
func (r *mongoMealRepository) Update(ctx context.Context, meal *domain.Meal) error {
	if meal.ID == primitive.NilObjectID {
		return errors.New("meal ID is required for update")
	}

	filter := bson.M{"_id": meal.ID, "user": meal.UserID}
	update := bson.M{
		"$set": bson.M{
			"name":        meal.Name,
			"type":        meal.Type,
			"calories":    meal.Calories,
			"protein":     meal.Protein,
			"carbs":       meal.Carbs,
			"fat":         meal.Fat,
			"notes":       meal.Notes,
			"date":        meal.Date,
			"isFavorite":  meal.IsFavorite,
			"ingredients": meal.Ingredients,
			"updatedAt":   time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a meal within the owner's scope.
func (r *mongoMealRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureMealIndexes creates necessary indexes for the meals collection.
func EnsureMealIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "type", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
