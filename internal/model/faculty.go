package model

// Faculty is a teaching staff member — maps to faculty.
// Email is derived from the name during imports and is the stable natural key;
// names as printed in timetables are not unique enough on their own.
type Faculty struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string `gorm:"type:varchar(150);not null;index"               json:"name"`
	Email      string `gorm:"type:varchar(150);not null;uniqueIndex"         json:"email"`
	Department string `gorm:"type:varchar(100);not null;default:'TBD'"       json:"department"`
	Password   string `gorm:"type:varchar(100);not null;default:''"          json:"-"`
	BaseModel
}

// TableName sets the table name.
func (Faculty) TableName() string { return "faculty" }
