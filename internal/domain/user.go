package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender values accepted in a user profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel describes how active a user is day to day.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Profile holds the physical stats a user may fill in.
type Profile struct {
	Height        float64       `bson:"height,omitempty" json:"height,omitempty"`
	Weight        float64       `bson:"weight,omitempty" json:"weight,omitempty"`
	Age           int           `bson:"age,omitempty" json:"age,omitempty"`
	Gender        Gender        `bson:"gender,omitempty" json:"gender,omitempty"`
	ActivityLevel ActivityLevel `bson:"activityLevel,omitempty" json:"activityLevel,omitempty"`
}

// NotificationPrefs toggles the channels a user wants to be notified on.
type NotificationPrefs struct {
	Email bool `bson:"email" json:"email"`
	Push  bool `bson:"push" json:"push"`
}

// UnitPrefs selects the unit system used when rendering measurements.
type UnitPrefs struct {
	Weight string `bson:"weight" json:"weight"` // "kg" or "lbs"
	Height string `bson:"height" json:"height"` // "cm" or "ft"
}

// Preferences groups user-tunable settings.
type Preferences struct {
	Theme         string            `bson:"theme" json:"theme"` // "light" or "dark"
	Notifications NotificationPrefs `bson:"notifications" json:"notifications"`
	Units         UnitPrefs         `bson:"units" json:"units"`
}

// WeightEntry is a single point in a user's weight history.
type WeightEntry struct {
	Weight float64   `bson:"weight" json:"weight"`
	Date   time.Time `bson:"date" json:"date"`
}

// User represents a registered account. Every workout, meal, goal and
// custom exercise belongs to exactly one user.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username      string             `bson:"username" json:"username"` // Should be unique
	Email         string             `bson:"email" json:"email"`       // Should be unique, lowercased
	PasswordHash  string             `bson:"passwordHash" json:"-"`    // Never expose this via JSON
	Profile       Profile            `bson:"profile,omitempty" json:"profile"`
	Preferences   Preferences        `bson:"preferences" json:"preferences"`
	AvatarURL     string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	WeightHistory []WeightEntry      `bson:"weightHistory,omitempty" json:"weightHistory,omitempty"`
	LastLogin     *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultPreferences are applied at registration.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme: "light",
		Notifications: NotificationPrefs{
			Email: true,
			Push:  true,
		},
		Units: UnitPrefs{
			Weight: "kg",
			Height: "cm",
		},
	}
}

// AddWeightEntry appends a weight record, defaulting the date to now.
func (u *User) AddWeightEntry(weight float64, date time.Time) {
	if date.IsZero() {
		date = time.Now().UTC()
	}
	u.WeightHistory = append(u.WeightHistory, WeightEntry{Weight: weight, Date: date})
}
