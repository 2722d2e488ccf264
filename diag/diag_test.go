package diag

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Success, "Success"},
		{FailedToInitialize, "FailedToInitialize"},
		{InvalidData, "InvalidData"},
		{Failure, "Failure"},
		{Status(99), "Status(99)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestResultOK(t *testing.T) {
	if !(Result{Status: Success}).OK() {
		t.Error("Success result should be OK")
	}
	if (Result{Status: Failure}).OK() {
		t.Error("Failure result should not be OK")
	}
}

func TestUnsupported(t *testing.T) {
	r := Unsupported("OpCapability", "Capability 3 is unsupported.")
	if r.Status != Failure {
		t.Fatalf("status = %v, want Failure", r.Status)
	}
	want := "OpCapability: Capability 3 is unsupported."
	if r.Message != want {
		t.Errorf("message = %q, want %q", r.Message, want)
	}
}

func TestDataMessage(t *testing.T) {
	r := Data("Provided data was not an integer number of 32-bit words")
	if r.Status != InvalidData {
		t.Fatalf("status = %v, want InvalidData", r.Status)
	}
}

func TestResultErrorFallback(t *testing.T) {
	r := Result{Status: Failure}
	if r.Error() != "spv error code: 3" {
		t.Errorf("Error() = %q, want fallback form", r.Error())
	}
}
