package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors shared by repositories, services and handlers.
var (
	ErrUserExists          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidTempPassword = errors.New("invalid temporary password")
	ErrNotFound            = errors.New("not found")
	ErrImageNotFound       = errors.New("image not found")
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrMailDelivery        = errors.New("mail delivery failed")
)

type User struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name         string               `json:"name" bson:"name"`
	Email        string               `json:"email" bson:"email"`
	PasswordHash string               `json:"-" bson:"password"` // json:"-" keeps the hash out of every response
	Properties   []primitive.ObjectID `json:"properties" bson:"properties"`
}

type Blog struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title             string             `json:"title" bson:"title"`
	Description       string             `json:"description" bson:"description"`
	FeatureImage      string             `json:"featureImage" bson:"featureImage"`
	DescriptionImages []string           `json:"descriptionImages" bson:"descriptionImages"`
	Category          string             `json:"category" bson:"category"`
	Tags              []string           `json:"tags" bson:"tags"`
	Username          string             `json:"username" bson:"username"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// PropertyDocument has no fixed schema: every field the client submits is
// stored verbatim. Only "propertyimages" and "username" are interpreted.
type PropertyDocument map[string]interface{}

// Images returns the propertyimages field as a string slice. Documents
// decoded from the store carry arrays as primitive.A.
func (d PropertyDocument) Images() []string {
	switch v := d["propertyimages"].(type) {
	case []string:
		return v
	case primitive.A:
		return toStrings(v)
	case []interface{}:
		return toStrings(v)
	}
	return nil
}

func toStrings(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
