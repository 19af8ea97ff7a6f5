package model

// TimeSlot is a named teaching interval — maps to time_slots.
// Times are HH:MM:SS strings on a TIME column. The (start_time, end_time)
// pair is unique; SlotNumber records the column position in the sheet the
// slot was first seen in.
type TimeSlot struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"       json:"id"`
	StartTime  string `gorm:"type:time;not null;uniqueIndex:time_slots_range_key"  json:"start_time"`
	EndTime    string `gorm:"type:time;not null;uniqueIndex:time_slots_range_key"  json:"end_time"`
	SlotNumber int    `gorm:"not null;default:1"                                   json:"slot_number"`
	BaseModel
}

// TableName sets the table name.
func (TimeSlot) TableName() string { return "time_slots" }
