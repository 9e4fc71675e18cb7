package language

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Language
		wantOK bool
	}{
		{"tamil", Tamil, true},
		{"TELUGU", Telugu, true},
		{"  kannada ", Kannada, true},
		{"malayalam", Malayalam, true},
		{"english", English, true},
		{"mixed", Mixed, true},
		{"hindi", None, false},
		{"", None, false},
		{"null", None, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDisplay(t *testing.T) {
	if got := Tamil.Display(); got != "Tamil" {
		t.Errorf("Display() = %q, want Tamil", got)
	}
	if got := None.Display(); got != "" {
		t.Errorf("Display() on absent language = %q, want empty", got)
	}
}

func TestNormalize(t *testing.T) {
	d := Detection{Primary: Tamil, Secondary: English, Confidence: 0.9, CodeMixed: false, MixRatio: 0.4}
	got := d.Normalize()
	if got.Secondary != None || got.MixRatio != 0.0 {
		t.Errorf("Normalize() left secondary=%q ratio=%v on non-mixed record", got.Secondary, got.MixRatio)
	}

	mixed := Detection{Primary: Tamil, Secondary: English, Confidence: 0.9, CodeMixed: true, MixRatio: 0.4}
	if got := mixed.Normalize(); got != mixed {
		t.Errorf("Normalize() altered a code-mixed record: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		det     Detection
		wantErr bool
	}{
		{
			name: "valid code-mixed",
			det:  Detection{Primary: Tamil, Secondary: English, Confidence: 0.92, CodeMixed: true, MixRatio: 0.5},
		},
		{
			name: "valid pure english",
			det:  Detection{Primary: English, Confidence: 0.8},
		},
		{
			name: "default record",
			det:  DefaultDetection(),
		},
		{
			name:    "unknown primary",
			det:     Detection{Primary: "hindi", Confidence: 0.5},
			wantErr: true,
		},
		{
			name:    "secondary equals primary",
			det:     Detection{Primary: Tamil, Secondary: Tamil, Confidence: 0.9, CodeMixed: true, MixRatio: 0.5},
			wantErr: true,
		},
		{
			name:    "confidence above one",
			det:     Detection{Primary: English, Confidence: 1.2},
			wantErr: true,
		},
		{
			name:    "negative mix ratio",
			det:     Detection{Primary: Tamil, Secondary: English, Confidence: 0.9, CodeMixed: true, MixRatio: -0.1},
			wantErr: true,
		},
		{
			name:    "not mixed but secondary present",
			det:     Detection{Primary: Tamil, Secondary: English, Confidence: 0.9, CodeMixed: false, MixRatio: 0.0},
			wantErr: true,
		},
		{
			name:    "not mixed but nonzero ratio",
			det:     Detection{Primary: Tamil, Confidence: 0.9, CodeMixed: false, MixRatio: 0.3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.det.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrDetectionData) {
				t.Errorf("Validate() error %v does not wrap ErrDetectionData", err)
			}
		})
	}
}
