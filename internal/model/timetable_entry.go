package model

// TimetableEntry is one scheduled class occurrence — maps to timetable_entries.
// RoomID is nullable: online and unassigned sessions have no room. The
// (section_id, day, time_slot_id) unique constraint is the authoritative
// duplicate guard for imports.
type TimetableEntry struct {
	ID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                      json:"id"`
	SectionID  string  `gorm:"type:uuid;not null;uniqueIndex:timetable_entries_section_day_slot_key" json:"section_id"`
	SubjectID  string  `gorm:"type:uuid;not null"                                                  json:"subject_id"`
	FacultyID  string  `gorm:"type:uuid;not null"                                                  json:"faculty_id"`
	RoomID     *string `gorm:"type:uuid"                                                           json:"room_id,omitempty"`
	Day        string  `gorm:"type:varchar(10);not null;uniqueIndex:timetable_entries_section_day_slot_key" json:"day"`
	TimeSlotID string  `gorm:"type:uuid;not null;uniqueIndex:timetable_entries_section_day_slot_key" json:"time_slot_id"`
	BaseModel

	Section  *Section  `gorm:"foreignKey:SectionID"  json:"section,omitempty"`
	Subject  *Subject  `gorm:"foreignKey:SubjectID"  json:"subject,omitempty"`
	Faculty  *Faculty  `gorm:"foreignKey:FacultyID"  json:"faculty,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID"     json:"room,omitempty"`
	TimeSlot *TimeSlot `gorm:"foreignKey:TimeSlotID" json:"time_slot,omitempty"`
}

// TableName sets the table name.
func (TimetableEntry) TableName() string { return "timetable_entries" }
