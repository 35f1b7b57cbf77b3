package models

import "time"

type StaffEvent struct {
	Event      string    `json:"event"`
	ClinicID   string    `json:"clinic_id"`
	Role       string    `json:"role"`
	EntityID   string    `json:"entity_id"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
