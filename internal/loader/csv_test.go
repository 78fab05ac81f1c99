package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Helper to create a temp CSV file.
func createTempCSV(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "survey.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp CSV file: %v", err)
	}

	return path
}

const validHeader = "timestamp,status,current_title,current_salary,salary_type,percent_incr,other_info,location,performance_rating\n"

func TestLoader_Load(t *testing.T) {
	csv := validHeader +
		"3/29/2020 9:17,Full Time,Sr. Software Engineer,30.29,hour,2.5,,Los Angeles Center Studios,Top Performer\n" +
		"3/29/2020 9:20,Full Time,Producer,,year,,prefers privacy,Irvine,\n"

	records, err := NewLoader().Load(createTempCSV(t, csv))
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Load returned %d records, want 2", len(records))
	}

	first := records[0]

	if first.RawTitle != "Sr. Software Engineer" {
		t.Errorf("RawTitle = %q, want %q", first.RawTitle, "Sr. Software Engineer")
	}

	if first.RawSalary == nil || *first.RawSalary != 30.29 {
		t.Errorf("RawSalary = %v, want 30.29", first.RawSalary)
	}

	if first.PercentIncrease == nil || *first.PercentIncrease != 2.5 {
		t.Errorf("PercentIncrease = %v, want 2.5", first.PercentIncrease)
	}

	second := records[1]

	// Blank numerics load as missing, not zero.
	if second.RawSalary != nil {
		t.Errorf("RawSalary = %v, want nil for blank cell", *second.RawSalary)
	}

	if second.PercentIncrease != nil {
		t.Errorf("PercentIncrease = %v, want nil for blank cell", *second.PercentIncrease)
	}

	if second.OtherInfo != "prefers privacy" {
		t.Errorf("OtherInfo = %q, want %q", second.OtherInfo, "prefers privacy")
	}
}

func TestLoader_Load_SchemaMismatch(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{
			name:   "wrong column name",
			header: "timestamp,status,job_title,current_salary,salary_type,percent_incr,other_info,location,performance_rating\n",
		},
		{
			name:   "missing column",
			header: "timestamp,status,current_title,current_salary,salary_type,percent_incr,other_info,location\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Load(createTempCSV(t, tt.header))
			if !errors.Is(err, ErrSchemaMismatch) {
				t.Errorf("Load error = %v, want ErrSchemaMismatch", err)
			}
		})
	}
}

func TestLoader_Load_UnparsableNumericIsMissing(t *testing.T) {
	csv := validHeader +
		"3/29/2020,Full Time,Producer,not a number,year,,,Irvine,\n"

	records, err := NewLoader().Load(createTempCSV(t, csv))
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}

	if records[0].RawSalary != nil {
		t.Errorf("RawSalary = %v, want nil for unparsable cell", *records[0].RawSalary)
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("Load of missing file should error")
	}
}
