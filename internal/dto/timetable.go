package dto

// CreateEntryRequest books one class occurrence manually.
type CreateEntryRequest struct {
	SectionID  string  `json:"section_id"  binding:"required,uuid"`
	SubjectID  string  `json:"subject_id"  binding:"required,uuid"`
	FacultyID  string  `json:"faculty_id"  binding:"required,uuid"`
	RoomID     *string `json:"room_id"     binding:"omitempty,uuid"`
	Day        string  `json:"day"         binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	TimeSlotID string  `json:"time_slot_id" binding:"required,uuid"`
}
