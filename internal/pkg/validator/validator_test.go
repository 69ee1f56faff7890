package validator

import (
	"errors"
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Errorf("IsValidDate(2024-02-29) = false, want true")
	}
	for _, s := range []string{"2023-02-29", "2024/01/01", "", "01-01-2024"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	for m := 1; m <= 12; m++ {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1} {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = true, want false", m)
		}
	}
}

func TestParseYearMonth(t *testing.T) {
	cases := []struct {
		year, month string
		wantMonth   bool
		wantYear    bool
	}{
		{"2024", "1", false, false},
		{"2024", "12", false, false},
		{"2024", "13", true, false},
		{"2024", "0", true, false},
		{"2024", "x", true, false},
		{"abc", "1", false, true},
		{"1999", "5", false, true},
		{"", "", true, false},
	}
	for _, c := range cases {
		year, month, err := ParseYearMonth(c.year, c.month)
		switch {
		case c.wantMonth:
			if !errors.Is(err, ErrInvalidMonth) {
				t.Errorf("ParseYearMonth(%q, %q) = %v, want ErrInvalidMonth", c.year, c.month, err)
			}
		case c.wantYear:
			var verrs ValidationErrors
			if !errors.As(err, &verrs) || verrs.ToMap()["year"] == "" {
				t.Errorf("ParseYearMonth(%q, %q) = %v, want year validation error", c.year, c.month, err)
			}
		default:
			if err != nil || year == 0 || month == 0 {
				t.Errorf("ParseYearMonth(%q, %q) = %d, %d, %v", c.year, c.month, year, month, err)
			}
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	if got := errs.Error(); got != "a: bad; b: worse" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
	}
	invalid := []string{"abc", "p-1", "", "123e4567-e89b-12d3-a456-42661417400z"}
	for _, id := range valid {
		if !IsUUID(id) {
			t.Errorf("IsUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsUUID(id) {
			t.Errorf("IsUUID(%q) = true, want false", id)
		}
	}
}
