package model

// Program is a degree program — maps to programs.
type Program struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Department string `gorm:"type:varchar(100);not null;default:''"          json:"department"`
	BaseModel
}

// TableName sets the table name.
func (Program) TableName() string { return "programs" }
