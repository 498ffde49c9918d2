package speech

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Why did the\nchicken   cross?", "Why did the chicken cross?"},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestVoice_Normalized(t *testing.T) {
	v := Voice{Rate: 20, Pitch: -1, Volume: 2}.Normalized()
	if v.Rate != 10 || v.Pitch != 0 || v.Volume != 1 {
		t.Errorf("unexpected normalized voice %+v", v)
	}
	if DefaultVoice.Normalized() != DefaultVoice {
		t.Error("default voice changed by normalization")
	}
}
