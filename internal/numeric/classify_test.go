package numeric

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in       string
		wantKind Kind
		wantInt  int64
		wantF    float64
	}{
		{"42", Integer, 42, 42},
		{"  -7 ", Integer, -7, -7},
		{"2.0", Integer, 2, 2},
		{"1e3", Integer, 1000, 1000},
		{"3.25", Float, 0, 3.25},
		{"-0.5", Float, 0, -0.5},
		{"", NotANumber, 0, 0},
		{"   ", NotANumber, 0, 0},
		{"abc", NotANumber, 0, 0},
		{"12abc", NotANumber, 0, 0},
		{"NaN", NotANumber, 0, 0},
		{"0x10", NotANumber, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Classify(tt.in)
			if got.Kind != tt.wantKind {
				t.Fatalf("Classify(%q).Kind = %v, want %v", tt.in, got.Kind, tt.wantKind)
			}
			if got.Int != tt.wantInt {
				t.Errorf("Classify(%q).Int = %d, want %d", tt.in, got.Int, tt.wantInt)
			}
			if got.Float != tt.wantF {
				t.Errorf("Classify(%q).Float = %v, want %v", tt.in, got.Float, tt.wantF)
			}
		})
	}
}

func TestClassify_Infinity(t *testing.T) {
	got := Classify("Inf")
	if got.Kind != Float || !math.IsInf(got.Float, 1) {
		t.Errorf("Classify(Inf) = %+v, want +Inf float", got)
	}
}

func TestPredicates(t *testing.T) {
	if !IsNumeric("1.5") || IsNumeric("x") {
		t.Error("IsNumeric mismatch")
	}
	if !IsInteger("10") || IsInteger("10.5") {
		t.Error("IsInteger mismatch")
	}
	if !IsFloat("10.5") || IsFloat("10") {
		t.Error("IsFloat mismatch")
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{Integer: "integer", Float: "float", NotANumber: "not-a-number"} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestParseFinite(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{" 42 ", 42, false},
		{"-0.25", -0.25, false},
		{"1e3", 1000, false},
		{"abc", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"-Inf", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFinite(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFinite(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFinite(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
