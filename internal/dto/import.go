package dto

// ImportQuality summarizes room coverage of a parsed workbook. Online classes
// legitimately have no room; NonOnlineMissing is the count that actually needs
// attention.
type ImportQuality struct {
	TotalEntries     int `json:"total_entries"`
	MissingRooms     int `json:"missing_rooms"`
	NonOnlineMissing int `json:"non_online_missing"`
	OnlineClasses    int `json:"online_classes"`
}

// ParsedEntryPreview is one parsed class occurrence as shown in dry-run
// previews and result samples.
type ParsedEntryPreview struct {
	Section     string `json:"section"`
	Day         string `json:"day"`
	TimeSlot    string `json:"time_slot"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	FacultyName string `json:"faculty_name"`
	RoomNumber  string `json:"room_number,omitempty"`
	RawContent  string `json:"raw_content"`
}

// ImportPreviewResponse is the dry-run result: what would be imported,
// without touching the store.
type ImportPreviewResponse struct {
	TotalParsed int                  `json:"total_parsed"`
	Quality     ImportQuality        `json:"quality"`
	Sample      []ParsedEntryPreview `json:"sample"`
}

// ImportResultResponse is the outcome of a committed import.
// Inserted + Duplicates + Failed always equals TotalParsed.
type ImportResultResponse struct {
	TotalParsed int           `json:"total_parsed"`
	Inserted    int           `json:"inserted"`
	Updated     int           `json:"updated"`
	Duplicates  int           `json:"duplicates"`
	Failed      int           `json:"failed"`
	Quality     ImportQuality `json:"quality"`
	Errors      []string      `json:"errors,omitempty"`
}

// ResetResponse reports how many rows each table lost during a database reset.
type ResetResponse struct {
	Deleted map[string]int64 `json:"deleted"`
}
