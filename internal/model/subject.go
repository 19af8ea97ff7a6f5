package model

// Subject is a course subject — maps to subjects.
// Code follows the institution's 4-letter + 4-digit convention (e.g. CSEN3021).
type Subject struct {
	ID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code    string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Name    string `gorm:"type:varchar(200);not null"                     json:"name"`
	Credits int    `gorm:"not null;default:3"                             json:"credits"`
	BaseModel
}

// TableName sets the table name.
func (Subject) TableName() string { return "subjects" }
