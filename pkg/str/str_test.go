package str

import "testing"

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePositiveInt(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePositiveInt(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePositiveInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseFloat(t *testing.T) {
	if v, err := ParseFloat(" 80000.5 "); err != nil || v != 80000.5 {
		t.Errorf("ParseFloat = %v, %v", v, err)
	}
	if _, err := ParseFloat("not-a-number"); err == nil {
		t.Error("ParseFloat should fail on garbage")
	}
}
