package service

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ── Excel timetable parser ──────────────────────────────────
//
// Converts the institution's timetable workbooks into ParsedEntry lists.
// One worksheet covers one section and follows a single grid convention:
//
//   - a header row whose first cell contains "day/time" and whose remaining
//     cells are time ranges ("08:00-08:55", AM/PM and en/em dashes accepted)
//   - day rows below it; the first cell sets the current day and may be
//     left blank on continuation rows
//   - a legend table underneath, delimited by a "CODE | SUBJECT ..." header,
//     mapping subject codes to names and faculty
//
// Failure policy: anything that cannot be interpreted at row or cell
// granularity is skipped silently. A malformed sheet degrades to fewer
// entries, never an error; a sheet without the grid yields zero entries.
// ─────────────────────────────────────────────────────────────

const (
	// headerScanLimit bounds the search for the "day/time" header row.
	headerScanLimit = 80
	// minTimeColumns is the minimum number of parseable time ranges a row
	// needs before it is accepted as the schedule header.
	minTimeColumns = 3

	minutesPerDay  = 1440
	halfDayMinutes = 720

	// placeholderFaculty is used when a legend row names no faculty at all.
	placeholderFaculty = "TBD Faculty"
)

// dayNames maps the normalized first-column value to the canonical day name.
var dayNames = map[string]string{
	"monday":    "Monday",
	"tuesday":   "Tuesday",
	"wednesday": "Wednesday",
	"thursday":  "Thursday",
	"friday":    "Friday",
	"saturday":  "Saturday",
}

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	subjectCodeRe = regexp.MustCompile(`\b([A-Z]{4}\d{4})[A-Z]*\b`)
	// numericRoomRe matches building-prefixed rooms such as ABI-329,
	// ABVIII-205, ABII-4004 and AB-VIII-205.
	numericRoomRe = regexp.MustCompile(`\b[A-Z]{2,12}[A-Z0-9]{0,4}(?:-[A-Z0-9]{1,8})*-\d{1,4}[A-Z]?\b`)
	// namedLabRe matches labs without trailing numbers such as
	// ABXI-SMART MANUFACTURING LAB.
	namedLabRe      = regexp.MustCompile(`\b[A-Z]{2,12}[A-Z0-9]{0,4}-[A-Z0-9]+(?: [A-Z0-9]+){0,8} LAB\b`)
	breakCellRe     = regexp.MustCompile(`(?i)^(break|lunch)$`)
	facultyColonRe  = regexp.MustCompile(`^[A-Za-z0-9.+-]+\s*:\s*`)
	facultySlashRe  = regexp.MustCompile(`^[A-Za-z0-9.+-]+\s*/\s*`)
	parentheticalRe = regexp.MustCompile(`\(.*?\)`)
	dashRe          = regexp.MustCompile(`[–—]`)
	time24Re        = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	time12Re        = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
	slugRe          = regexp.MustCompile(`[^a-z0-9]+`)
)

// ParsedEntry is one class occurrence recovered from a worksheet, before any
// store resolution.
type ParsedEntry struct {
	SheetName   string
	Section     string
	Day         string
	TimeSlot    string // header label, e.g. "08:00-08:55"
	StartTime   string // HH:MM:SS
	EndTime     string // HH:MM:SS
	SlotNumber  int
	SubjectCode string
	SubjectName string
	FacultyRaw  string
	FacultyName string
	RoomNumber  string // empty when online or unassigned
	RawContent  string
}

// parsedSlot is a time-slot column of the schedule header.
type parsedSlot struct {
	colIndex   int
	slotNumber int
	label      string
	startTime  string
	endTime    string
}

// subjectMeta is one legend-table row.
type subjectMeta struct {
	name       string
	facultyRaw string
}

// ParseWorkbook parses every worksheet of an xlsx payload and returns the
// deduplicated entries across all sheets.
func ParseWorkbook(data []byte) ([]ParsedEntry, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var all []ParsedEntry
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		all = append(all, parseSectionSheet(sheet, rows)...)
	}

	return dedupeEntries(all), nil
}

// parseSectionSheet extracts the schedule entries of one worksheet. The sheet
// name doubles as the section name.
func parseSectionSheet(sheetName string, rows [][]string) []ParsedEntry {
	if len(rows) == 0 {
		return nil
	}

	headerRow := findScheduleHeaderRow(rows)
	if headerRow == -1 {
		return nil
	}

	slots := parseTimeSlots(rows[headerRow])
	if len(slots) == 0 {
		return nil
	}

	codeHeaderRow := findCodeHeaderRow(rows, headerRow+1)
	catalog := buildSubjectCatalog(rows, codeHeaderRow)

	scheduleEnd := len(rows)
	if codeHeaderRow != -1 {
		scheduleEnd = codeHeaderRow
	}

	var entries []ParsedEntry
	currentDay := ""

	for rowIndex := headerRow + 1; rowIndex < scheduleEnd; rowIndex++ {
		row := rows[rowIndex]
		col0 := normalizeText(cellAt(row, 0))

		if col0 != "" {
			if day, ok := dayNames[strings.ToLower(col0)]; ok {
				currentDay = day
			} else if strings.EqualFold(col0, "code") {
				break
			}
		}

		// Rows above the first day label are decorative.
		if currentDay == "" {
			continue
		}

		for _, slot := range slots {
			cellText := normalizeText(cellAt(row, slot.colIndex))
			if cellText == "" || breakCellRe.MatchString(cellText) {
				continue
			}

			code := extractSubjectCode(cellText)
			if code == "" {
				continue
			}

			meta := catalog[code]
			subjectName := meta.name
			if subjectName == "" {
				subjectName = code
			}

			entries = append(entries, ParsedEntry{
				SheetName:   sheetName,
				Section:     normalizeText(sheetName),
				Day:         currentDay,
				TimeSlot:    slot.label,
				StartTime:   slot.startTime,
				EndTime:     slot.endTime,
				SlotNumber:  slot.slotNumber,
				SubjectCode: code,
				SubjectName: subjectName,
				FacultyRaw:  meta.facultyRaw,
				FacultyName: extractPrimaryFaculty(meta.facultyRaw),
				RoomNumber:  extractRoomNumber(cellText),
				RawContent:  cellText,
			})
		}
	}

	return entries
}

// findScheduleHeaderRow locates the "day/time" header within the first 80
// rows. A candidate row must also yield at least 3 parseable time ranges;
// sheets without such a row are not schedule grids.
func findScheduleHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	for i := 0; i < limit; i++ {
		first := strings.ToLower(normalizeText(cellAt(rows[i], 0)))
		if !strings.Contains(first, "day/time") {
			continue
		}

		parseable := 0
		for col := 1; col < len(rows[i]); col++ {
			if _, _, _, ok := parseTimeRange(rows[i][col]); ok {
				parseable++
			}
		}
		if parseable >= minTimeColumns {
			return i
		}
	}
	return -1
}

// parseTimeSlots builds the ordered slot list from the header row. Headers
// run sequentially through the day and usually drop the AM/PM marker, so
// "12:00-01:00" means 12:00-13:00: whenever a start does not advance past
// the previous one it is pushed forward by 12 hours until monotonic (capped
// at midnight), and each end is pushed past its start the same way.
func parseTimeSlots(header []string) []parsedSlot {
	var slots []parsedSlot
	prevStart := -1

	for col := 1; col < len(header); col++ {
		label, start, end, ok := parseTimeRange(header[col])
		if !ok {
			continue
		}

		for prevStart != -1 && start <= prevStart && start+halfDayMinutes < minutesPerDay {
			start += halfDayMinutes
		}
		for end <= start && end+halfDayMinutes < minutesPerDay {
			end += halfDayMinutes
		}

		prevStart = start

		slots = append(slots, parsedSlot{
			colIndex:   col,
			slotNumber: len(slots) + 1,
			label:      label,
			startTime:  minutesToTime(start),
			endTime:    minutesToTime(end),
		})
	}

	return slots
}

// findCodeHeaderRow locates the legend header ("CODE | SUBJECT ...") below
// the schedule grid. -1 means the sheet carries no legend.
func findCodeHeaderRow(rows [][]string, startIndex int) int {
	for i := startIndex; i < len(rows); i++ {
		col0 := strings.ToLower(normalizeText(cellAt(rows[i], 0)))
		col1 := strings.ToLower(normalizeText(cellAt(rows[i], 1)))
		if col0 == "code" && strings.Contains(col1, "subject") {
			return i
		}
	}
	return -1
}

// buildSubjectCatalog reads the legend rows under the code header. The first
// non-empty name and faculty seen for a code win; later rows only fill gaps.
func buildSubjectCatalog(rows [][]string, codeHeaderRow int) map[string]subjectMeta {
	catalog := make(map[string]subjectMeta)
	if codeHeaderRow == -1 {
		return catalog
	}

	for i := codeHeaderRow + 1; i < len(rows); i++ {
		row := rows[i]
		code := extractSubjectCode(normalizeText(cellAt(row, 0)))
		if code == "" {
			continue
		}

		name := normalizeText(cellAt(row, 1))
		if name == "" {
			name = code
		}
		facultyRaw := normalizeText(cellAt(row, 6))

		existing, ok := catalog[code]
		if !ok {
			catalog[code] = subjectMeta{name: name, facultyRaw: facultyRaw}
			continue
		}
		if existing.name == "" {
			existing.name = name
		}
		if existing.facultyRaw == "" {
			existing.facultyRaw = facultyRaw
		}
		catalog[code] = existing
	}

	return catalog
}

// dedupeEntries removes later entries that repeat an earlier
// (section, day, start, end) key, preserving first-seen order. Merged header
// cells replicated per column produce exactly such repeats.
func dedupeEntries(entries []ParsedEntry) []ParsedEntry {
	seen := make(map[string]bool, len(entries))
	deduped := make([]ParsedEntry, 0, len(entries))

	for _, e := range entries {
		key := strings.ToLower(e.Section) + "|" + e.Day + "|" + e.StartTime + "|" + e.EndTime
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, e)
	}

	return deduped
}

// ── cell semantics ──

// normalizeText collapses runs of whitespace and trims the result.
func normalizeText(value string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(value, " "))
}

// extractSubjectCode returns the first 4-letter + 4-digit token, uppercased.
// Trailing letters ("CSEN3021L") are accepted but stripped. Empty means the
// text names no subject.
func extractSubjectCode(value string) string {
	text := strings.ToUpper(normalizeText(value))
	m := subjectCodeRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractRoomNumber pulls a room identifier out of cell text. Cells
// mentioning ONLINE have no room. When several rooms are concatenated the
// last match wins — it is the final, most specific reference.
func extractRoomNumber(value string) string {
	text := strings.ToUpper(normalizeText(value))
	if text == "" || strings.Contains(text, "ONLINE") {
		return ""
	}

	if matches := numericRoomRe.FindAllString(text, -1); len(matches) > 0 {
		return matches[len(matches)-1]
	}
	if matches := namedLabRe.FindAllString(text, -1); len(matches) > 0 {
		return matches[len(matches)-1]
	}

	return ""
}

// extractPrimaryFaculty picks the first faculty out of legend text such as
// "2AA1: Dr. A, 2AA2: Dr. B": the chunk before the first comma, with the
// per-batch prefix and parenthetical asides stripped.
func extractPrimaryFaculty(value string) string {
	text := normalizeText(value)
	if text == "" {
		return placeholderFaculty
	}

	firstChunk := normalizeText(strings.SplitN(text, ",", 2)[0])
	faculty := facultyColonRe.ReplaceAllString(firstChunk, "")
	faculty = facultySlashRe.ReplaceAllString(faculty, "")
	faculty = strings.TrimSpace(parentheticalRe.ReplaceAllString(faculty, ""))

	if faculty == "" {
		faculty = strings.TrimSpace(parentheticalRe.ReplaceAllString(text, ""))
	}
	if faculty == "" {
		return placeholderFaculty
	}
	return faculty
}

// parseTimeToken parses "08:00", "8:00", "08:00:00" and "08:00 AM" into
// minutes since midnight. ok=false means the token is not a time.
func parseTimeToken(token string) (int, bool) {
	text := strings.ToUpper(normalizeText(token))
	if text == "" {
		return 0, false
	}

	if m := time24Re.FindStringSubmatch(text); m != nil {
		hour, minute, second := atoi(m[1]), atoi(m[2]), 0
		if m[3] != "" {
			second = atoi(m[3])
		}
		if hour <= 23 && minute <= 59 && second <= 59 {
			return hour*60 + minute, true
		}
	}

	if m := time12Re.FindStringSubmatch(text); m != nil {
		hour, minute := atoi(m[1]), atoi(m[2])
		if hour >= 1 && hour <= 12 && minute <= 59 {
			switch m[3] {
			case "AM":
				if hour == 12 {
					hour = 0
				}
			case "PM":
				if hour != 12 {
					hour += 12
				}
			}
			return hour*60 + minute, true
		}
	}

	return 0, false
}

// parseTimeRange parses a "start-end" header cell, accepting en/em dashes as
// the separator. Returns the normalized label and both endpoints in minutes.
func parseTimeRange(value string) (label string, start, end int, ok bool) {
	raw := dashRe.ReplaceAllString(normalizeText(value), "-")
	if !strings.Contains(raw, "-") {
		return "", 0, 0, false
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return "", 0, 0, false
	}

	start, okStart := parseTimeToken(parts[0])
	end, okEnd := parseTimeToken(parts[1])
	if !okStart || !okEnd {
		return "", 0, 0, false
	}

	return raw, start, end, true
}

// minutesToTime renders minutes since midnight as an HH:MM:SS SQL time.
func minutesToTime(minutes int) string {
	wrapped := ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d:00", wrapped/60, wrapped%60)
}

// slugify lowercases a name into a dotted email local part.
func slugify(value string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(normalizeText(value)), ".")
	return strings.Trim(slug, ".")
}

func cellAt(row []string, index int) string {
	if index < len(row) {
		return row[index]
	}
	return ""
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
