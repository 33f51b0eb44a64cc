package setting

type UpsertSettingRequest struct {
	HariKerja []string `json:"workdays" binding:"required,min=1"`
}

type SettingResponse struct {
	ID        uint     `json:"id"`
	HariKerja []string `json:"workdays"`
}
