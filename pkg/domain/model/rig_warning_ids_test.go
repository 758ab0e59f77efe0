package model

import "testing"

func TestRigWarningIDsAreNonEmptyAndUnique(t *testing.T) {
	warningIDs := []string{
		RigWarningMissingLimitEntry,
		RigWarningLimitBoneNotInRig,
		RigWarningDegenerateDistance,
		RigWarningDegenerateDirection,
		RigWarningGroundBoneMissing,
	}

	seen := map[string]struct{}{}
	for _, warningID := range warningIDs {
		if warningID == "" {
			t.Fatalf("warning id should not be empty")
		}
		if _, exists := seen[warningID]; exists {
			t.Fatalf("warning id should be unique: %s", warningID)
		}
		seen[warningID] = struct{}{}
	}
}

func TestWarningSetAddReportsFirstOccurrenceOnly(t *testing.T) {
	set := NewWarningSet()
	if !set.Add(RigWarningDegenerateDirection) {
		t.Fatalf("first add should report new")
	}
	if set.Add(RigWarningDegenerateDirection) {
		t.Fatalf("second add should not report new")
	}
	if set.Add("") {
		t.Fatalf("empty id should be ignored")
	}
	set.Add(RigWarningDegenerateDistance)

	got := set.Sorted()
	if len(got) != 2 || got[0] != RigWarningDegenerateDirection || got[1] != RigWarningDegenerateDistance {
		t.Fatalf("sorted ids mismatch: %v", got)
	}
	if !set.Has(RigWarningDegenerateDistance) || set.Has(RigWarningGroundBoneMissing) {
		t.Fatalf("has mismatch: %v", got)
	}
}
