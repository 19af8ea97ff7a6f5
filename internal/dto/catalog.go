package dto

// CreateProgramRequest registers a degree program.
type CreateProgramRequest struct {
	Name       string `json:"name"       binding:"required,max=100"`
	Department string `json:"department" binding:"max=100"`
}

// CreateSectionRequest registers a section within a program.
type CreateSectionRequest struct {
	Name      string  `json:"name"       binding:"required,max=100"`
	ProgramID string  `json:"program_id" binding:"required,uuid"`
	Year      int     `json:"year"       binding:"omitempty,min=1,max=6"`
	Advisor   *string `json:"advisor"    binding:"omitempty,max=100"`
}

// CreateSubjectRequest registers a course subject.
type CreateSubjectRequest struct {
	Code    string `json:"code"    binding:"required,max=20"`
	Name    string `json:"name"    binding:"required,max=200"`
	Credits int    `json:"credits" binding:"omitempty,min=1,max=10"`
}

// CreateFacultyRequest registers a teaching staff member.
type CreateFacultyRequest struct {
	Name       string `json:"name"       binding:"required,max=150"`
	Email      string `json:"email"      binding:"required,email,max=150"`
	Department string `json:"department" binding:"max=100"`
}

// CreateRoomRequest registers a teaching room.
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required,max=100"`
	Capacity   int    `json:"capacity"    binding:"omitempty,min=1,max=1000"`
}
