package holiday

type CreateHolidayRequest struct {
	Tanggal    string `json:"date" binding:"required"`
	Keterangan string `json:"label" binding:"required"`
}

type UpdateHolidayRequest struct {
	Tanggal    string `json:"date" binding:"required"`
	Keterangan string `json:"label" binding:"required"`
}

type HolidayResponse struct {
	ID         uint   `json:"id"`
	Tanggal    string `json:"date"`
	Keterangan string `json:"label"`
}
