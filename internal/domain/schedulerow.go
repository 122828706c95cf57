package domain

// ScheduleRow is one raw extracted class meeting as delivered by the data
// collector, either as a JSON array element or a CSV record. Day, time, and
// date fields are free-form strings; the normalizer owns their parsing.
type ScheduleRow struct {
	CollegeName string `json:"college_name" csv:"college_name"`
	Term        string `json:"term" csv:"term"`
	Subject     string `json:"subject" csv:"subject"`
	CourseCode  string `json:"course_code" csv:"course_code"`
	CourseName  string `json:"course_name" csv:"course_name"`
	Building    string `json:"building" csv:"building"`
	Room        string `json:"room" csv:"room"`
	StartDate   string `json:"start_date" csv:"start_date"`
	EndDate     string `json:"end_date" csv:"end_date"`
	Days        string `json:"days" csv:"days"`
	StartTime   string `json:"start_time" csv:"start_time"`
	EndTime     string `json:"end_time" csv:"end_time"`
}
