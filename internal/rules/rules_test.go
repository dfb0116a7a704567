package rules

import "testing"

func TestExcluded_FileName(t *testing.T) {
	rs := []Rule{{Pattern: "*_test.py", Active: true}}
	if !Excluded(rs, "pkg/util_test.py") {
		t.Fatal("expected *_test.py to exclude pkg/util_test.py")
	}
	if Excluded(rs, "pkg/util.py") {
		t.Fatal("did not expect *_test.py to exclude pkg/util.py")
	}
}

func TestExcluded_PathSegment(t *testing.T) {
	rs := []Rule{{Pattern: "build", Active: true}}
	if !Excluded(rs, "build/out.c") {
		t.Fatal("expected 'build' to exclude files under build/")
	}
	if !Excluded(rs, "src/build/out.c") {
		t.Fatal("expected 'build' to match a nested segment")
	}
	if Excluded(rs, "src/builder/out.c") {
		t.Fatal("'build' must not match the 'builder' segment")
	}
}

func TestExcluded_InactiveRule(t *testing.T) {
	rs := []Rule{{Pattern: "*.py", Active: false}}
	if Excluded(rs, "a.py") {
		t.Fatal("inactive rules must not exclude anything")
	}
}

func TestExcluded_NoRules(t *testing.T) {
	if Excluded(nil, "anything.py") {
		t.Fatal("no rules must exclude nothing")
	}
}

func TestValidate(t *testing.T) {
	if err := (Rule{Pattern: "*.py"}).Validate(); err != nil {
		t.Fatalf("valid pattern rejected: %v", err)
	}
	if err := (Rule{Pattern: ""}).Validate(); err == nil {
		t.Fatal("empty pattern accepted")
	}
	if err := (Rule{Pattern: "[unclosed"}).Validate(); err == nil {
		t.Fatal("malformed glob accepted")
	}
}
