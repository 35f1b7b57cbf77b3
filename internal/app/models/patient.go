package models

import "time"

type PatientRecord struct {
	ID        string    `json:"id"`
	ClinicID  string    `json:"clinicId"`
	Name      string    `json:"name"`
	BirthDate string    `json:"birthDate"`
	ArrivedAt time.Time `json:"arrivedAt"`
}
