package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-10-07"); !ok {
		t.Error("IsValidDate(2025-10-07) = false, want true")
	}
	invalid := []string{"07-10-2025", "2025/10/07", "2025-13-01", "not-a-date", ""}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidCoordinates(t *testing.T) {
	if !IsValidLatitude(-6.1753924) || !IsValidLongitude(106.8271528) {
		t.Error("valid Jakarta coordinates rejected")
	}
	if IsValidLatitude(91) || IsValidLatitude(-90.5) {
		t.Error("out-of-range latitude accepted")
	}
	if IsValidLongitude(180.1) || IsValidLongitude(-181) {
		t.Error("out-of-range longitude accepted")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "employee_id is required"},
		{Field: "latitude", Message: "latitude must be between -90 and 90"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["employee_id"] == "" || m["latitude"] == "" {
		t.Errorf("ToMap() = %v, want both fields present", m)
	}
	if errs.Error() == "" {
		t.Error("Error() should join messages")
	}
}
