package main

import "testing"

func TestValidateLinksFlags(t *testing.T) {
	cases := []struct {
		name    string
		flags   rangeFlags
		wantErr bool
	}{
		{"start and end", rangeFlags{start: 2, end: 10}, false},
		{"start and chunk", rangeFlags{start: 2, chunk: 5}, false},
		{"auto alone", rangeFlags{auto: true}, false},
		{"auto with chunk", rangeFlags{auto: true, chunk: 5}, false},
		{"inverted range", rangeFlags{start: 10, end: 2}, true},
		{"start alone", rangeFlags{start: 2}, true},
		{"nothing", rangeFlags{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateLinksFlags(tc.flags)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %+v", tc.flags)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %+v: %v", tc.flags, err)
			}
		})
	}
}

func TestValidateRoutinesFlags(t *testing.T) {
	if err := validateRoutinesFlags(rangeFlags{start: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateRoutinesFlags(rangeFlags{}); err == nil {
		t.Fatal("expected error without --start")
	}
	if err := validateRoutinesFlags(rangeFlags{start: 2, chunk: 5}); err == nil {
		t.Fatal("expected error with --chunk")
	}
	if err := validateRoutinesFlags(rangeFlags{start: 2, auto: true}); err == nil {
		t.Fatal("expected error with --auto")
	}
}
