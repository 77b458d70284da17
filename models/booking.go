package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking represents a customer travel inquiry.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	Destination string             `bson:"destination" json:"destination"`
	Package     string             `bson:"package" json:"package"`
	BudgetMin   float64            `bson:"budgetMin" json:"budgetMin"`
	BudgetMax   float64            `bson:"budgetMax" json:"budgetMax"`
	People      int                `bson:"people" json:"people"`
	Days        int                `bson:"days" json:"days"`
	Message     string             `bson:"message" json:"message"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
