package congress

import "testing"

func TestNormalizeState(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"California", "CA", true},
		{"california", "CA", true},
		{"  new york ", "NY", true},
		{"TX", "TX", true},
		{"tx", "TX", true},
		{"Narnia", "", false},
		{"ZZ", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeState(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("NormalizeState(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBillURL(t *testing.T) {
	cases := []struct {
		billType string
		number   string
		want     string
	}{
		{"HR", "3421", "https://www.congress.gov/bill/118th-congress/house-bill/3421"},
		{"S", "1247", "https://www.congress.gov/bill/118th-congress/senate-bill/1247"},
		{"SJRES", "12", "https://www.congress.gov/bill/118th-congress/senate-joint-resolution/12"},
		{"hres", "99", "https://www.congress.gov/bill/118th-congress/house-resolution/99"},
		{"XYZ", "1", "https://www.congress.gov/bill/118th-congress/bill/1"},
		{"", "1", "https://www.congress.gov"},
		{"HR", "", "https://www.congress.gov"},
	}

	for _, tc := range cases {
		if got := BillURL(118, tc.billType, tc.number); got != tc.want {
			t.Errorf("BillURL(118, %q, %q) = %q, want %q", tc.billType, tc.number, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2024-12-15", "2024-12-15"},
		{"2024-12-15T10:30:00Z", "2024-12-15"},
		{"", "Unknown"},
		{"not a date", "not a date"},
	}

	for _, tc := range cases {
		if got := formatDate(tc.input); got != tc.want {
			t.Errorf("formatDate(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
