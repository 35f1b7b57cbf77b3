package models

import "time"

type Clinic struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CEOID     string    `bson:"ceo_id,omitempty" json:"ceo_id,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
