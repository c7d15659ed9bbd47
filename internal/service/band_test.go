package service

import "testing"

func TestResolveBandPicksLargestSatisfiedThreshold(t *testing.T) {
	rules := []BandRule[string]{
		{Threshold: 0, Payload: "base"},
		{Threshold: 3, Payload: "mid"},
		{Threshold: 6, Payload: "top"},
	}

	cases := []struct {
		subject int
		want    string
	}{
		{0, "base"},
		{2, "base"},
		{3, "mid"},
		{5, "mid"},
		{6, "top"},
		{100, "top"},
	}
	for _, tc := range cases {
		got, ok := ResolveBand(rules, tc.subject)
		if !ok {
			t.Fatalf("subject %d: expected a match", tc.subject)
		}
		if got != tc.want {
			t.Fatalf("subject %d: expected %q, got %q", tc.subject, tc.want, got)
		}
	}
}

func TestResolveBandNoMatchBelowLowestThreshold(t *testing.T) {
	rules := []BandRule[int]{
		{Threshold: 5, Payload: 50},
		{Threshold: 10, Payload: 100},
	}
	got, ok := ResolveBand(rules, 4)
	if ok {
		t.Fatalf("expected no match below lowest threshold, got %d", got)
	}
	if got != 0 {
		t.Fatalf("expected zero payload on miss, got %d", got)
	}
}

func TestResolveBandEmptyRules(t *testing.T) {
	if _, ok := ResolveBand[string](nil, 10); ok {
		t.Fatal("expected no match on empty rule set")
	}
}

func TestResolveBandLaterEqualThresholdWins(t *testing.T) {
	rules := []BandRule[string]{
		{Threshold: 3, Payload: "first"},
		{Threshold: 3, Payload: "second"},
	}
	got, ok := ResolveBand(rules, 3)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "second" {
		t.Fatalf("expected later rule to win on equal thresholds, got %q", got)
	}
}
