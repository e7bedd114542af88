package vi

import "testing"

func TestFoldStripsTonesAndCase(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Đông chí", "dong chi"},
		{"Giáp Thìn", "giap thin"},
		{"XUÂN PHÂN", "xuan phan"},
		{"  Thu phân  ", "thu phan"},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEqualIsToneAndCaseInsensitive(t *testing.T) {
	if !Equal("Đông chí", "dong chi") {
		t.Error("Equal(\"Đông chí\", \"dong chi\") = false, want true")
	}
	if Equal("Đông chí", "Hạ chí") {
		t.Error("Equal(\"Đông chí\", \"Hạ chí\") = true, want false")
	}
}

func TestFindIndex(t *testing.T) {
	names := []string{"Xuân phân", "Thanh minh", "Đông chí"}

	if idx := FindIndex(names, "dong chi"); idx != 2 {
		t.Errorf("FindIndex(dong chi) = %d, want 2", idx)
	}
	if idx := FindIndex(names, "no such term"); idx != -1 {
		t.Errorf("FindIndex(no such term) = %d, want -1", idx)
	}
}
