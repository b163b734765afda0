package convert

import "testing"

func TestConvertNumericFields(t *testing.T) {
	tests := []struct {
		field string
		raw   string
		want  any
	}{
		{"amount", "100", int64(100)},
		{"amount", "007", int64(7)},
		{"amount", "100.7", int64(100)},
		{"amount", "-100.7", int64(-100)},
		{"annualRevenue", "2500000", int64(2500000)},
		{"probability", "0.8", int64(0)},
		{"caseNumber", "42", int64(42)},
		{"amount", "n/a", nil},
		{"amount", "12,000", nil},
		{"amount", "", nil},
	}
	for _, tt := range tests {
		got := Convert(tt.field, tt.raw)
		if got != tt.want {
			t.Errorf("Convert(%q, %q) = %v (%T), want %v", tt.field, tt.raw, got, got, tt.want)
		}
	}
}

func TestConvertDateFields(t *testing.T) {
	tests := []struct {
		field string
		raw   string
		want  any
	}{
		{"createdDate", "2024-03-05", "2024-03-05"},
		{"createdDate", "03/05/2024", "2024-03-05"},
		{"createdDate", "3/5/2024", "2024-03-05"},
		{"closedDate", "31/12/2024", "2024-12-31"},
		{"closedDate", "12/31/2024", "2024-12-31"},
		{"createdDate", "not a date", "not a date"},
		{"createdDate", "   ", nil},
		{"createdDate", "", nil},
	}
	for _, tt := range tests {
		got := Convert(tt.field, tt.raw)
		if got != tt.want {
			t.Errorf("Convert(%q, %q) = %v, want %v", tt.field, tt.raw, got, tt.want)
		}
	}
}

func TestConvertDateAmbiguousDayMonth(t *testing.T) {
	// Both readings are valid; the month-first layout is tried first and wins.
	got := Convert("closeDate", "03/04/2024")
	if got != "2024-03-04" {
		t.Errorf("Convert ambiguous date = %v, want 2024-03-04", got)
	}
}

func TestConvertPassthrough(t *testing.T) {
	if got := Convert("status", "Open"); got != "Open" {
		t.Errorf("Convert(status) = %v, want Open", got)
	}
	if got := Convert("status", ""); got != nil {
		t.Errorf("Convert(status, empty) = %v, want nil", got)
	}
	// Text fields keep leading digits as text.
	if got := Convert("phone", "5551234"); got != "5551234" {
		t.Errorf("Convert(phone) = %v, want string 5551234", got)
	}
}

func TestFieldPredicates(t *testing.T) {
	tests := []struct {
		field   string
		numeric bool
		date    bool
	}{
		{"Annual_Revenue", true, false},
		{"amount", true, false},
		{"Case_Number", true, false},
		{"probability", true, false},
		{"Created_Date", false, true},
		{"closedDate", false, true},
		{"created", false, true},
		{"name", false, false},
		{"status", false, false},
	}
	for _, tt := range tests {
		if got := IsNumericField(tt.field); got != tt.numeric {
			t.Errorf("IsNumericField(%q) = %v, want %v", tt.field, got, tt.numeric)
		}
		if got := IsDateField(tt.field); got != tt.date {
			t.Errorf("IsDateField(%q) = %v, want %v", tt.field, got, tt.date)
		}
	}
}

func TestNumericBeatsDateWhenBothMatch(t *testing.T) {
	// A field like closedAmount mentions both rules; the numeric one is
	// checked first.
	if got := Convert("closedAmount", "12.5"); got != int64(12) {
		t.Errorf("Convert(closedAmount) = %v, want int64(12)", got)
	}
}
