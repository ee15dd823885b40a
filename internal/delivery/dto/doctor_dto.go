package dto

// Response DTOs

type ScheduleBlockResponse struct {
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room"`
}

type DoctorResponse struct {
	RUT       string                  `json:"rut"`
	Name      string                  `json:"name"`
	Specialty string                  `json:"specialty"`
	Status    string                  `json:"status,omitempty"`
	Email     string                  `json:"email,omitempty"`
	Phone     string                  `json:"phone,omitempty"`
	Schedule  []ScheduleBlockResponse `json:"schedule"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// SearchFilters echoes the filters a search was run with.
type SearchFilters struct {
	Text      string `json:"text,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	Weekday   string `json:"weekday,omitempty"`
	Room      string `json:"room,omitempty"`
}

type DoctorSearchResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
	Filters SearchFilters    `json:"filters"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

type RoomLabelListResponse struct {
	Rooms []string `json:"rooms"`
	Total int      `json:"total"`
}

type SpecialtyStatResponse struct {
	Specialty  string  `json:"specialty"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type SpecialtyStatsResponse struct {
	Stats        []SpecialtyStatResponse `json:"stats"`
	TotalDoctors int                     `json:"total_doctors"`
}
