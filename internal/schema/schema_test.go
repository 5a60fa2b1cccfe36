package schema

import "testing"

func TestCompatibleWithAcceptsMatchingRange(t *testing.T) {
	ok, err := CompatibleWith(">=1.0.0, <2.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !ok {
		t.Fatalf("expected version %s to satisfy >=1.0.0, <2.0.0", Version)
	}
}

func TestCompatibleWithRejectsOutOfRange(t *testing.T) {
	ok, err := CompatibleWith(">=2.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ok {
		t.Fatalf("did not expect version %s to satisfy >=2.0.0", Version)
	}
}

func TestCompatibleWithReportsMalformedConstraint(t *testing.T) {
	if _, err := CompatibleWith("not a constraint"); err == nil {
		t.Fatal("expected an error for a malformed constraint")
	}
}
