package health

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePatient(t *testing.T) {
	testCases := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "Alice", want: "Alice"},
		{name: "  Bob  ", want: "Bob"},
		{name: "Jean-Pierre O'Neil", want: "Jean-Pierre O'Neil"},
		{name: "Zoë", want: "Zoë"},
		{name: "Alice.2", want: "Alice.2"},
		{name: "", wantErr: true},
		{name: "   ", wantErr: true},
		{name: "a/b", wantErr: true},
		{name: `a\b`, wantErr: true},
		{name: "..", wantErr: true},
		{name: ".bashrc", wantErr: true},
		{name: "tab\there", wantErr: true},
		{name: "nul\x00", wantErr: true},
		{name: "Alice_report", wantErr: true},
		{name: "Alice_data", wantErr: true},
		{name: strings.Repeat("x", 65), wantErr: true},
		{name: strings.Repeat("x", 64), want: strings.Repeat("x", 64)},
	}
	for _, tc := range testCases {
		got, err := ValidatePatient(tc.name)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidPatient) {
				t.Errorf("ValidatePatient(%q) = %q, %v; want ErrInvalidPatient", tc.name, got, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ValidatePatient(%q) = %q, %v; want %q", tc.name, got, err, tc.want)
		}
	}
}

func TestSelectPatient(t *testing.T) {
	testCases := []struct {
		selected, typed string
		want            string
		wantErr         error
	}{
		{selected: "Alice", typed: "", want: "Alice"},
		{selected: "", typed: "Bob", want: "Bob"},
		{selected: "Alice", typed: "Bob", want: "Bob"},
		{selected: "Alice", typed: "  ", want: "Alice"},
		{selected: "", typed: "", wantErr: ErrNoPatient},
		{selected: "Alice", typed: "../x", wantErr: ErrInvalidPatient},
	}
	for _, tc := range testCases {
		got, err := SelectPatient(tc.selected, tc.typed)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("SelectPatient(%q, %q) error = %v, want %v", tc.selected, tc.typed, err, tc.wantErr)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("SelectPatient(%q, %q) = %q, %v; want %q", tc.selected, tc.typed, got, err, tc.want)
		}
	}
}
