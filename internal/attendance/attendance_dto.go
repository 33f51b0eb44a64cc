package attendance

type RecordAttendanceRequest struct {
	KaryawanID uint   `json:"employee_id" binding:"required"`
	Timestamp  string `json:"timestamp" binding:"required"`
	Status     string `json:"status" binding:"required"`
}

type RecordResponse struct {
	ID         uint   `json:"id"`
	KaryawanID uint   `json:"employee_id"`
	Timestamp  string `json:"timestamp"`
	Status     string `json:"status"`
}
