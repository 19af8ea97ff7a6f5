package model

// Section is a class section within a program — maps to sections.
// One worksheet of an uploaded timetable conventionally covers one section.
type Section struct {
	ID        string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"              json:"id"`
	Name      string  `gorm:"type:varchar(100);not null;uniqueIndex:sections_name_program_key" json:"name"`
	ProgramID string  `gorm:"type:uuid;not null;uniqueIndex:sections_name_program_key"    json:"program_id"`
	Year      int     `gorm:"not null"                                                    json:"year"`
	Advisor   *string `gorm:"type:varchar(100)"                                           json:"advisor,omitempty"`
	BaseModel

	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

// TableName sets the table name.
func (Section) TableName() string { return "sections" }
