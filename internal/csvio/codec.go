// Package csvio round-trips a dataset through the durable CSV interchange
// format: metadata comment lines, a fixed 12-column schema, every field
// double-quoted. Parsing is strict; on any failure no events are returned.
package csvio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/AngelCh415/SDR_GO/internal/models"
)

const (
	metaSummaryKey   = "DASHBOARD_SUMMARY_JSON"
	metaSeedKey      = "SEED"
	metaGeneratedKey = "GENERATED_AT"
)

var columns = []string{
	"event_id", "lead_id", "timestamp", "week_start", "sdr_id", "sdr_name",
	"team", "company", "industry", "channel", "outcome", "objection",
}

// ParseError reports a fatal CSV import failure with enough context to show
// the user verbatim.
type ParseError struct {
	Line    int
	Column  string
	Value   string
	Message string
}

func (e *ParseError) Error() string { return e.Message }

func parseErrorf(line int, column, value, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Column: column, Value: value, Message: fmt.Sprintf(format, args...)}
}

// Marshal writes metadata comments, the header row and one all-quoted data
// row per event. Output uses LF line endings.
func Marshal(events []models.OutreachEvent, summary models.DashboardSummaries, seed string, generatedAt time.Time) []byte {
	var b strings.Builder
	sj, _ := json.Marshal(summary)
	fmt.Fprintf(&b, "# %s=%s\n", metaSummaryKey, sj)
	fmt.Fprintf(&b, "# %s=%s\n", metaSeedKey, seed)
	fmt.Fprintf(&b, "# %s=%s\n", metaGeneratedKey, generatedAt.UTC().Format(time.RFC3339))

	writeRow(&b, columns)
	for _, ev := range events {
		objection := ""
		if ev.Objection != nil {
			objection = string(*ev.Objection)
		}
		writeRow(&b, []string{
			ev.EventID,
			ev.LeadID,
			ev.Timestamp.UTC().Format(time.RFC3339),
			ev.WeekStart.UTC().Format(time.RFC3339),
			ev.SDRID,
			ev.SDRName,
			ev.Team,
			ev.Company,
			ev.Industry,
			string(ev.Channel),
			string(ev.Outcome),
			objection,
		})
	}
	return []byte(b.String())
}

// writeRow quotes every field unconditionally, doubling internal quotes.
func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// Result is a successful import: the raw events plus whatever metadata the
// file embedded.
type Result struct {
	Events  []models.OutreachEvent
	Seed    string
	Summary *models.DashboardSummaries
}

// Parse reads the interchange format back. Blank lines are dropped, comment
// lines are scanned for the recognized metadata keys, the header must carry
// all 12 columns in any order, and every value is validated against its
// domain. Any failure aborts the whole import.
func Parse(data []byte) (*Result, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	res := &Result{}
	var colIndex map[string]int
	sawContent := false

	for lineNo, raw := range lines {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		sawContent = true

		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			if err := res.readMetadata(lineNo+1, line); err != nil {
				return nil, err
			}
			continue
		}

		fields, err := splitRow(line)
		if err != nil {
			return nil, parseErrorf(lineNo+1, "", "", "line %d: malformed CSV row: %v", lineNo+1, err)
		}

		if colIndex == nil {
			colIndex, err = indexHeader(lineNo+1, fields)
			if err != nil {
				return nil, err
			}
			continue
		}

		ev, err := parseRow(lineNo+1, fields, colIndex)
		if err != nil {
			return nil, err
		}
		res.Events = append(res.Events, ev)
	}

	if !sawContent {
		return nil, parseErrorf(0, "", "", "empty file: no content lines found")
	}
	if colIndex == nil {
		return nil, parseErrorf(0, "", "", "no header row found")
	}
	return res, nil
}

func (r *Result) readMetadata(lineNo int, line string) error {
	body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#"))
	key, value, ok := strings.Cut(body, "=")
	if !ok {
		return nil
	}
	switch strings.TrimSpace(key) {
	case metaSummaryKey:
		var s models.DashboardSummaries
		if err := json.Unmarshal([]byte(value), &s); err != nil {
			return parseErrorf(lineNo, metaSummaryKey, "", "line %d: malformed embedded summary JSON: %v", lineNo, err)
		}
		r.Summary = &s
	case metaSeedKey:
		r.Seed = strings.TrimSpace(value)
	}
	return nil
}

// splitRow parses one physical line as CSV, honoring quoted commas and
// doubled-quote escapes. Rows never span lines in this format.
func splitRow(line string) ([]string, error) {
	rd := csv.NewReader(strings.NewReader(line))
	rd.FieldsPerRecord = -1
	return rd.Read()
}

func indexHeader(lineNo int, fields []string) (map[string]int, error) {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[strings.TrimSpace(f)] = i
	}
	var missing []string
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, parseErrorf(lineNo, strings.Join(missing, ","), "",
			"line %d: header missing required column(s): %s", lineNo, strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRow(lineNo int, fields []string, idx map[string]int) (models.OutreachEvent, error) {
	var ev models.OutreachEvent

	get := func(col string) (string, error) {
		i := idx[col]
		if i >= len(fields) {
			return "", parseErrorf(lineNo, col, "", "line %d: row missing value for column %q", lineNo, col)
		}
		return fields[i], nil
	}
	required := func(col string) (string, error) {
		v, err := get(col)
		if err != nil {
			return "", err
		}
		if v == "" {
			return "", parseErrorf(lineNo, col, "", "line %d: missing required value for column %q", lineNo, col)
		}
		return v, nil
	}

	var err error
	if ev.EventID, err = required("event_id"); err != nil {
		return ev, err
	}
	if ev.LeadID, err = required("lead_id"); err != nil {
		return ev, err
	}
	if ev.SDRID, err = required("sdr_id"); err != nil {
		return ev, err
	}
	if ev.SDRName, err = required("sdr_name"); err != nil {
		return ev, err
	}
	if ev.Team, err = required("team"); err != nil {
		return ev, err
	}
	if ev.Company, err = required("company"); err != nil {
		return ev, err
	}
	if ev.Industry, err = required("industry"); err != nil {
		return ev, err
	}

	ts, err := required("timestamp")
	if err != nil {
		return ev, err
	}
	if ev.Timestamp, err = parseTime(lineNo, "timestamp", ts); err != nil {
		return ev, err
	}
	ws, err := required("week_start")
	if err != nil {
		return ev, err
	}
	if ev.WeekStart, err = parseTime(lineNo, "week_start", ws); err != nil {
		return ev, err
	}

	ch, err := required("channel")
	if err != nil {
		return ev, err
	}
	ev.Channel = models.Channel(ch)
	if !ev.Channel.Valid() {
		return ev, parseErrorf(lineNo, "channel", ch, "line %d: invalid channel value %q", lineNo, ch)
	}

	oc, err := required("outcome")
	if err != nil {
		return ev, err
	}
	ev.Outcome = models.Outcome(oc)
	if !ev.Outcome.Valid() {
		return ev, parseErrorf(lineNo, "outcome", oc, "line %d: invalid outcome value %q", lineNo, oc)
	}

	obj, err := get("objection")
	if err != nil {
		return ev, err
	}
	if obj != "" {
		o := models.Objection(obj)
		if !o.Valid() {
			return ev, parseErrorf(lineNo, "objection", obj, "line %d: invalid objection value %q", lineNo, obj)
		}
		ev.Objection = &o
	}

	return ev, nil
}

func parseTime(lineNo int, col, v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, parseErrorf(lineNo, col, v, "line %d: invalid %s value %q", lineNo, col, v)
	}
	return t.UTC(), nil
}

// ReconstructDataset rebuilds the directory universe from imported events by
// distinct-value extraction. Company identifiers are slugs of the display
// name; quiet flags are unknowable from the schema and default to false.
func ReconstructDataset(events []models.OutreachEvent, seed string) models.GeneratedDataset {
	teamSet := map[string]struct{}{}
	industrySet := map[string]struct{}{}
	sdrSet := map[string]models.SDR{}
	companySet := map[string]models.Company{}

	for _, ev := range events {
		teamSet[ev.Team] = struct{}{}
		industrySet[ev.Industry] = struct{}{}
		if _, ok := sdrSet[ev.SDRID]; !ok {
			sdrSet[ev.SDRID] = models.SDR{ID: ev.SDRID, Name: ev.SDRName, Team: ev.Team}
		}
		if _, ok := companySet[ev.Company]; !ok {
			companySet[ev.Company] = models.Company{
				ID:       slug.Make(ev.Company),
				Name:     ev.Company,
				Industry: ev.Industry,
			}
		}
	}

	ds := models.GeneratedDataset{Seed: seed, Events: events}
	for t := range teamSet {
		ds.Teams = append(ds.Teams, t)
	}
	sort.Strings(ds.Teams)
	for i := range industrySet {
		ds.Industries = append(ds.Industries, models.Industry{Name: i})
	}
	sort.Slice(ds.Industries, func(i, j int) bool { return ds.Industries[i].Name < ds.Industries[j].Name })
	for _, s := range sdrSet {
		ds.SDRs = append(ds.SDRs, s)
	}
	sort.Slice(ds.SDRs, func(i, j int) bool { return ds.SDRs[i].ID < ds.SDRs[j].ID })
	for _, c := range companySet {
		ds.Companies = append(ds.Companies, c)
	}
	sort.Slice(ds.Companies, func(i, j int) bool { return ds.Companies[i].ID < ds.Companies[j].ID })
	return ds
}
