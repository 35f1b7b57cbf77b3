package responses

type Chart struct {
	Labels      []string `json:"labels"`
	Values      []int    `json:"values"`
	Highlighted []int    `json:"highlighted"`
}

type ClinicAnalytics struct {
	ClinicID        string `json:"clinic_id"`
	Year            int    `json:"year"`
	TotalPatients   int    `json:"total_patients"`
	AgeDemographics Chart  `json:"age_demographics"`
	Arrivals        Chart  `json:"arrivals"`
}
