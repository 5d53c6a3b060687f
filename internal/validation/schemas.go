package validation

import (
	"time"
)

// Date requires an RFC 3339 timestamp (string form) or a time.Time.
func Date() Rule {
	return func(field string, value any) error {
		switch v := value.(type) {
		case time.Time:
			return nil
		case string:
			if _, err := time.Parse(time.RFC3339, v); err != nil {
				return &ValidationError{Field: field, Reason: "must be an RFC 3339 date"}
			}
			return nil
		default:
			return &ValidationError{Field: field, Reason: "must be a date"}
		}
	}
}

// goalTarget validates the nested {value, unit} object of a goal.
func goalTarget() Rule {
	return func(field string, value any) error {
		obj, ok := value.(map[string]any)
		if !ok {
			// Typed callers hand the pieces in directly.
			return nil
		}
		if v, present := obj["value"]; present {
			if _, ok := asNumber(v); !ok {
				return &ValidationError{Field: field + ".value", Reason: "must be a number"}
			}
		} else {
			return &ValidationError{Field: field + ".value", Reason: "required"}
		}
		if u, present := obj["unit"]; present {
			if err := NotEmpty()(field+".unit", u); err != nil {
				return err
			}
		} else {
			return &ValidationError{Field: field + ".unit", Reason: "required"}
		}
		return nil
	}
}

// Workout is the schema for workout create/update payloads.
var Workout = Schema{
	Required: []string{"name", "type", "duration", "difficulty"},
	Fields: map[string][]Rule{
		"name":       {NotEmpty()},
		"type":       {In("strength", "cardio", "flexibility", "hiit", "custom")},
		"duration":   {Min(1)},
		"difficulty": {In("beginner", "intermediate", "advanced")},
	},
	Updatable: []string{"name", "type", "duration", "difficulty", "exercises", "notes"},
}

// Meal is the schema for nutrition create/update payloads.
var Meal = Schema{
	Required: []string{"name", "type", "calories", "protein", "carbs", "fat"},
	Fields: map[string][]Rule{
		"name":     {NotEmpty()},
		"type":     {In("breakfast", "lunch", "dinner", "snack")},
		"calories": {Min(0)},
		"protein":  {Min(0)},
		"carbs":    {Min(0)},
		"fat":      {Min(0)},
		"date":     {Date()},
	},
	Updatable: []string{"name", "type", "calories", "protein", "carbs", "fat", "notes", "ingredients", "date"},
}

// Goal is the schema for goal create/update payloads.
var Goal = Schema{
	Required: []string{"title", "type", "target", "targetDate"},
	Fields: map[string][]Rule{
		"title":      {NotEmpty()},
		"type":       {In("weight", "workout", "nutrition", "strength", "endurance", "custom")},
		"target":     {goalTarget()},
		"targetDate": {Date()},
		"priority":   {In("low", "medium", "high")},
	},
	Updatable: []string{"title", "type", "target", "targetDate", "description", "priority", "milestones", "reminders"},
}

// Exercise is the schema for exercise create/update payloads.
var Exercise = Schema{
	Required: []string{"name", "category", "muscleGroup", "difficulty"},
	Fields: map[string][]Rule{
		"name":        {NotEmpty()},
		"category":    {In("strength", "cardio", "swimming", "cycling")},
		"muscleGroup": {In("Chest", "Back", "Shoulders", "Biceps", "Triceps", "Legs", "Core", "Full Body")},
		"difficulty":  {In("beginner", "intermediate", "advanced")},
		"description": {MinLen(10)},
	},
	Updatable: []string{"name", "category", "muscleGroup", "difficulty", "description", "instructions", "equipment", "videoUrl"},
}

// UserProfile is the schema for profile update payloads. The nested profile
// and preferences objects are validated field by field by the user service.
var UserProfile = Schema{
	Fields: map[string][]Rule{
		"username": {MinLen(3)},
		"email":    {NotEmpty()},
	},
	Updatable: []string{"username", "email", "profile", "preferences"},
}

// ProfileFields validates the nested profile object of a user update.
var ProfileFields = Schema{
	Fields: map[string][]Rule{
		"age":           {Range(13, 120)},
		"gender":        {In("male", "female", "other")},
		"activityLevel": {In("sedentary", "light", "moderate", "active", "very_active")},
		"height":        {Min(0)},
		"weight":        {Min(0)},
	},
	Updatable: []string{"height", "weight", "age", "gender", "activityLevel"},
}
