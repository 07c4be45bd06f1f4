package export

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleExport = `Activity Name,Activity Type,Activity Gear,Distance_KM,Moving Time,Average Speed,Max Speed,Commute,Activity Date
Morning Run,Run,Pegasus 40,10,3000,2.5,5,FALSE,"05 Jan 2024, 18:30:00"
Commute Ride,Ride,Allez,6.2,1200,5.0,8.3,TRUE,"05 Jan 2024, 08:05:00"
No Date,Run,,5,1500,2.4,3,FALSE,
Zero Dist,Run,,0,600,2.0,3,FALSE,"06 Jan 2024, 10:00:00"
Evening Swim,Swim,,1.5,2400,0.6,1.1,FALSE,"07 Jan 2024, 21:15:00"
`

func TestLoad(t *testing.T) {
	col := Load(strings.NewReader(sampleExport))

	if len(col) != 3 {
		t.Fatalf("Load() kept %d activities, want 3", len(col))
	}
	// file order survives
	wantNames := []string{"Morning Run", "Commute Ride", "Evening Swim"}
	for i, want := range wantNames {
		if col[i].Name != want {
			t.Errorf("col[%d].Name = %q, want %q", i, col[i].Name, want)
		}
	}
	if !col[1].Commute {
		t.Error("Commute Ride should be flagged as a commute")
	}
	if col[0].DayOfWeek != "Friday" {
		t.Errorf("col[0].DayOfWeek = %q, want Friday", col[0].DayOfWeek)
	}
}

func TestLoadEmptyInput(t *testing.T) {
	if col := Load(strings.NewReader("")); len(col) != 0 {
		t.Errorf("Load(empty) kept %d activities, want 0", len(col))
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	header := "Activity Name,Activity Type,Distance_KM,Activity Date\n"
	if col := Load(strings.NewReader(header)); len(col) != 0 {
		t.Errorf("Load(header only) kept %d activities, want 0", len(col))
	}
}

func TestLoadRaggedRows(t *testing.T) {
	// second data row has an extra trailing field, third is cut short
	input := `Activity Name,Distance_KM,Activity Date
Full Row,5,"05 Jan 2024, 18:30:00"
Extra Field,6,"06 Jan 2024, 10:00:00",stray
Short Row,7
`
	col := Load(strings.NewReader(input))
	if len(col) != 2 {
		t.Fatalf("Load() kept %d activities, want 2", len(col))
	}
	if col[0].Name != "Full Row" || col[1].Name != "Extra Field" {
		t.Errorf("kept %q and %q", col[0].Name, col[1].Name)
	}
}

func TestLoadKeepsDuplicates(t *testing.T) {
	input := `Activity Name,Distance_KM,Activity Date
Repeat,5,"05 Jan 2024, 18:30:00"
Repeat,5,"05 Jan 2024, 18:30:00"
`
	col := Load(strings.NewReader(input))
	if len(col) != 2 {
		t.Fatalf("Load() kept %d activities, want 2", len(col))
	}
}

func TestLoadIsDeterministic(t *testing.T) {
	first := Load(strings.NewReader(sampleExport))
	second := Load(strings.NewReader(sampleExport))
	if !reflect.DeepEqual(first, second) {
		t.Error("two loads of the same input differ")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.csv")
	if err := os.WriteFile(path, []byte(sampleExport), 0o644); err != nil {
		t.Fatal(err)
	}

	col, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(col) != 3 {
		t.Errorf("LoadFile() kept %d activities, want 3", len(col))
	}
}

func TestLoadFileMissing(t *testing.T) {
	col, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("LoadFile() error = nil, want an error")
	}
	if col != nil {
		t.Errorf("LoadFile() collection = %v, want nil", col)
	}
}
