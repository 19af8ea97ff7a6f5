package service

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// testSheetRows is a representative section worksheet: banner rows, the
// day/time header with an afternoon written without AM/PM, a continuation
// row with a blank day cell, a break column and a legend table.
func testSheetRows() [][]string {
	return [][]string{
		{"GITAM UNIVERSITY"},
		{"School of Technology", "Timetable 2025-26"},
		{},
		{"DAY/TIME", "08:00-08:55", "09:00-09:55", "12:00-12:55", "01:00-01:55"},
		{"Monday", "CSEN3021 ABI-329", "", "BREAK", "ECON2001 Lecture ONLINE"},
		{"", "", "MECH3010 ABXI-SMART MANUFACTURING LAB", "", ""},
		{"Tuesday", "ECON2001 ABI-329", "CSEN3021 ABI-329", "LUNCH", ""},
		{},
		{"CODE", "SUBJECT NAME", "", "", "", "", "FACULTY"},
		{"CSEN3021", "Data Structures", "", "", "", "", "2AA1: Dr. Alice, 2AA2: Dr. Bob"},
		{"ECON2001", "Microeconomics", "", "", "", "", "Dr. Carol (Visiting)"},
		{"MECH3010", "Smart Manufacturing", "", "", "", "", ""},
	}
}

func TestParseSectionSheet_Grid(t *testing.T) {
	entries := parseSectionSheet("2AA05", testSheetRows())

	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Section != "2AA05" || first.Day != "Monday" {
		t.Errorf("unexpected section/day: %s/%s", first.Section, first.Day)
	}
	if first.SubjectCode != "CSEN3021" {
		t.Errorf("expected CSEN3021, got %s", first.SubjectCode)
	}
	if first.SubjectName != "Data Structures" {
		t.Errorf("legend name not applied: %s", first.SubjectName)
	}
	if first.FacultyName != "Dr. Alice" {
		t.Errorf("expected primary faculty Dr. Alice, got %q", first.FacultyName)
	}
	if first.RoomNumber != "ABI-329" {
		t.Errorf("expected room ABI-329, got %q", first.RoomNumber)
	}
	if first.StartTime != "08:00:00" || first.EndTime != "08:55:00" {
		t.Errorf("unexpected times: %s-%s", first.StartTime, first.EndTime)
	}

	// Continuation row inherits Monday from the row above.
	var lab *ParsedEntry
	for i := range entries {
		if entries[i].SubjectCode == "MECH3010" {
			lab = &entries[i]
		}
	}
	if lab == nil {
		t.Fatal("continuation-row entry missing")
	}
	if lab.Day != "Monday" {
		t.Errorf("day carry-forward failed: %s", lab.Day)
	}
	if lab.RoomNumber != "ABXI-SMART MANUFACTURING LAB" {
		t.Errorf("named lab not extracted: %q", lab.RoomNumber)
	}
	if lab.FacultyName != "TBD Faculty" {
		t.Errorf("expected placeholder faculty, got %q", lab.FacultyName)
	}

	// Online session carries the subject but no room.
	var online *ParsedEntry
	for i := range entries {
		if entries[i].SubjectCode == "ECON2001" && entries[i].Day == "Monday" {
			online = &entries[i]
		}
	}
	if online == nil {
		t.Fatal("online entry missing")
	}
	if online.RoomNumber != "" {
		t.Errorf("online entry should have no room, got %q", online.RoomNumber)
	}
	if online.StartTime != "13:00:00" || online.EndTime != "13:55:00" {
		t.Errorf("afternoon correction failed: %s-%s", online.StartTime, online.EndTime)
	}
	if online.FacultyName != "Dr. Carol" {
		t.Errorf("parenthetical not stripped: %q", online.FacultyName)
	}

	for _, e := range entries {
		if e.RawContent == "BREAK" || e.RawContent == "LUNCH" {
			t.Errorf("break cell produced an entry: %+v", e)
		}
	}
}

func TestParseSectionSheet_NoHeader(t *testing.T) {
	rows := [][]string{
		{"Instructions"},
		{"This sheet holds notes, not a schedule"},
		{"Monday", "CSEN3021 ABI-329"},
	}
	if entries := parseSectionSheet("Notes", rows); len(entries) != 0 {
		t.Fatalf("expected 0 entries from a non-grid sheet, got %d", len(entries))
	}
}

func TestFindScheduleHeaderRow_RequiresTimeColumns(t *testing.T) {
	rows := [][]string{
		{"DAY/TIME", "morning", "afternoon"},
		{"DAY/TIME", "08:00-08:55", "09:00-09:55", "10:00-10:55"},
	}
	if got := findScheduleHeaderRow(rows); got != 1 {
		t.Fatalf("expected header at row 1, got %d", got)
	}

	short := [][]string{{"DAY/TIME", "08:00-08:55", "09:00-09:55"}}
	if got := findScheduleHeaderRow(short); got != -1 {
		t.Fatalf("two time columns should not qualify, got row %d", got)
	}
}

func TestParseTimeSlots_AfternoonMonotonic(t *testing.T) {
	header := []string{"DAY/TIME", "11:00-11:55", "12:00-12:55", "01:00-01:55", "02:00-02:55"}
	slots := parseTimeSlots(header)
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}

	wantStarts := []string{"11:00:00", "12:00:00", "13:00:00", "14:00:00"}
	wantEnds := []string{"11:55:00", "12:55:00", "13:55:00", "14:55:00"}
	for i, slot := range slots {
		if slot.startTime != wantStarts[i] || slot.endTime != wantEnds[i] {
			t.Errorf("slot %d: got %s-%s, want %s-%s",
				i, slot.startTime, slot.endTime, wantStarts[i], wantEnds[i])
		}
		if slot.slotNumber != i+1 {
			t.Errorf("slot %d: slot number %d", i, slot.slotNumber)
		}
	}
}

func TestParseTimeToken(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantOK  bool
	}{
		{"8:00", 480, true},
		{"08:00", 480, true},
		{"08:00:00", 480, true},
		{"12:30 PM", 750, true},
		{"12:30 AM", 30, true},
		{"9:05 pm", 21*60 + 5, true},
		{"  10:15  ", 615, true},
		{"25:00", 0, false},
		{"8.30", 0, false},
		{"morning", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := parseTimeToken(c.in)
		if ok != c.wantOK || (ok && got != c.want) {
			t.Errorf("parseTimeToken(%q) = %d,%v want %d,%v", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestParseTimeRange_Dashes(t *testing.T) {
	for _, in := range []string{"08:00-08:55", "08:00 – 08:55", "08:00—08:55"} {
		_, start, end, ok := parseTimeRange(in)
		if !ok || start != 480 || end != 535 {
			t.Errorf("parseTimeRange(%q) = %d,%d,%v", in, start, end, ok)
		}
	}
	if _, _, _, ok := parseTimeRange("08:00"); ok {
		t.Error("range without separator should not parse")
	}
	if _, _, _, ok := parseTimeRange("08:00-noon"); ok {
		t.Error("range with a non-time endpoint should not parse")
	}
}

func TestExtractSubjectCode(t *testing.T) {
	cases := []struct{ in, want string }{
		{"CSEN3021 - Data Structures", "CSEN3021"},
		{"csen3021l", "CSEN3021"},
		{"Room ABI-329 CSEN3021", "CSEN3021"},
		{"Data Structures", ""},
		{"CSE3021", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := extractSubjectCode(c.in); got != c.want {
			t.Errorf("extractSubjectCode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractRoomNumber(t *testing.T) {
	cases := []struct{ in, want string }{
		{"CSEN3021 ABI-329", "ABI-329"},
		{"ABVIII-205", "ABVIII-205"},
		{"AB-VIII-205", "AB-VIII-205"},
		{"ABI-101 / ABI-202", "ABI-202"},
		{"MECH3010 ABXI-SMART MANUFACTURING LAB", "ABXI-SMART MANUFACTURING LAB"},
		{"Lecture ONLINE", ""},
		{"ECON2001 online", ""},
		{"plain lecture", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := extractRoomNumber(c.in); got != c.want {
			t.Errorf("extractRoomNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractPrimaryFaculty(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2AA1: Dr. Alice, 2AA2: Dr. Bob", "Dr. Alice"},
		{"2AA1/ Dr. Alice", "Dr. Alice"},
		{"Dr. Carol (Visiting)", "Dr. Carol"},
		{"Dr. D. Rao", "Dr. D. Rao"},
		{"", "TBD Faculty"},
		{"(TBD)", "TBD Faculty"},
	}
	for _, c := range cases {
		if got := extractPrimaryFaculty(c.in); got != c.want {
			t.Errorf("extractPrimaryFaculty(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDedupeEntries(t *testing.T) {
	a := ParsedEntry{Section: "2AA05", Day: "Monday", StartTime: "08:00:00", EndTime: "08:55:00", SubjectCode: "CSEN3021"}
	dup := a
	dup.SubjectCode = "ECON2001" // same booking key, different payload
	caseDup := a
	caseDup.Section = "2aa05"
	b := a
	b.StartTime, b.EndTime = "09:00:00", "09:55:00"

	deduped := dedupeEntries([]ParsedEntry{a, dup, caseDup, b})
	if len(deduped) != 2 {
		t.Fatalf("expected 2 entries after dedupe, got %d", len(deduped))
	}
	if deduped[0].SubjectCode != "CSEN3021" {
		t.Errorf("first occurrence should win, got %s", deduped[0].SubjectCode)
	}

	if again := dedupeEntries(deduped); len(again) != len(deduped) {
		t.Errorf("dedupe is not idempotent: %d -> %d", len(deduped), len(again))
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Dr. Alice Kumar", "dr.alice.kumar"},
		{"  B.V.  Rao ", "b.v.rao"},
		{"TBD Faculty", "tbd.faculty"},
	}
	for _, c := range cases {
		if got := slugify(c.in); got != c.want {
			t.Errorf("slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseWorkbook_EndToEnd(t *testing.T) {
	data := buildTestWorkbook(t)

	entries, err := ParseWorkbook(data)
	if err != nil {
		t.Fatalf("ParseWorkbook failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Section != "2AA05" {
			t.Errorf("unexpected section %q", e.Section)
		}
	}
}

func TestParseWorkbook_NotXLSX(t *testing.T) {
	if _, err := ParseWorkbook([]byte("not a workbook")); err == nil {
		t.Fatal("expected an error for a non-xlsx payload")
	}
}

// buildTestWorkbook renders testSheetRows into an in-memory xlsx file.
func buildTestWorkbook(t *testing.T) []byte {
	t.Helper()
	return buildWorkbook(t, "2AA05", testSheetRows())
}

// buildWorkbook renders one sheet of cell rows into an in-memory xlsx file.
func buildWorkbook(t *testing.T, sheet string, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatalf("create sheet: %v", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("drop default sheet: %v", err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			t.Fatalf("set row %d: %v", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}
