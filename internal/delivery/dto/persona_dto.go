package dto

// Legacy persona records keep their historical Spanish field names on the
// wire.

type CreatePersonaRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
	Edad   *int   `json:"edad" validate:"omitempty,gte=0,lte=150"`
}

type UpdatePersonaRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
	Edad   *int   `json:"edad" validate:"omitempty,gte=0,lte=150"`
}

type PersonaResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Edad   *int   `json:"edad,omitempty"`
}

type PersonaListResponse struct {
	Personas []PersonaResponse `json:"personas"`
	Total    int               `json:"total"`
}
