package model

// Room is a teaching room — maps to rooms.
// RoomNumber keeps the building-prefixed form found in timetables
// (ABI-329, ABXI-SMART MANUFACTURING LAB).
type Room struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoomNumber string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"room_number"`
	Capacity   int    `gorm:"not null;default:60"                            json:"capacity"`
	BaseModel
}

// TableName sets the table name.
func (Room) TableName() string { return "rooms" }
