package settings

type SettingsResponse struct {
	Name               string `json:"name"`
	LogoURL            string `json:"logo_url"`
	Address            string `json:"address"`
	RegistrationNumber string `json:"registration_number"`
	TaxID              string `json:"tax_id"`
}

type UpdateSettingsRequest struct {
	Name               string `json:"name" binding:"required,max=200"`
	LogoURL            string `json:"logo_url" binding:"omitempty,url,max=500"`
	Address            string `json:"address"`
	RegistrationNumber string `json:"registration_number" binding:"max=100"`
	TaxID              string `json:"tax_id" binding:"max=100"`
}

func mapToResponse(s *InstitutionSettings) SettingsResponse {
	return SettingsResponse{
		Name:               s.Name,
		LogoURL:            s.LogoURL,
		Address:            s.Address,
		RegistrationNumber: s.RegistrationNumber,
		TaxID:              s.TaxID,
	}
}
