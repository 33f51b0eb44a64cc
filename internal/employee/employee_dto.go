package employee

type CreateEmployeeRequest struct {
	Nama     string `json:"name" binding:"required"`
	NIP      string `json:"nip" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6"`
	Status   string `json:"status" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Nama  string `json:"name" binding:"required"`
	NIP   string `json:"nip" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	// Password opsional: hanya di-hash ulang kalau diisi
	Password string `json:"password" binding:"omitempty,min=6"`
	Status   string `json:"status" binding:"omitempty"`
}

type EmployeeResponse struct {
	ID     uint   `json:"id"`
	Nama   string `json:"name"`
	NIP    string `json:"nip"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status"`
}
