package model

import (
	"errors"
	"testing"
)

func TestEncodeFormatsHoursNaturally(t *testing.T) {
	cases := []struct {
		row  TaskRow
		want string
	}{
		{TaskRow{ProjectName: "A", TaskName: "B", Hours: 3}, "A: B (3h)"},
		{TaskRow{ProjectName: "Acme", TaskName: "Billing", Hours: 2.5}, "Acme: Billing (2.5h)"},
		{TaskRow{ProjectName: "X", TaskName: "Y", Hours: 0.25}, "X: Y (0.25h)"},
		{TaskRow{ProjectName: "Big", TaskName: "Job", Hours: 1200}, "Big: Job (1200h)"},
		{TaskRow{}, ":  (0h)"},
	}
	for _, tc := range cases {
		if got := Encode(tc.row); got != tc.want {
			t.Fatalf("Encode(%+v) = %q, want %q", tc.row, got, tc.want)
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	rows := []TaskRow{
		{ProjectName: "A", TaskName: "B", Hours: 3},
		{ProjectName: "Acme Corp", TaskName: "Billing run", Hours: 4.5},
		{ProjectName: "", TaskName: "", Hours: 0},
		{ProjectName: "proj:x", TaskName: "task: with colon", Hours: 1},
		{ProjectName: "Ops", TaskName: "Setup(partial)", Hours: 0.125},
		{ProjectName: " padded ", TaskName: " spaced ", Hours: 8},
		{ProjectName: "Ünïcode", TaskName: "日本語", Hours: 7.75},
	}
	for _, row := range rows {
		got, err := Decode(Encode(row))
		if err != nil {
			t.Fatalf("decode(encode(%+v)) failed: %v", row, err)
		}
		if !got.SameContent(row) {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, row)
		}
	}
}

func TestDecodeRejectsMalformedTitles(t *testing.T) {
	titles := []string{
		"Event Conf.",
		"",
		"Acme Billing (4h)",
		"Acme: Billing (4 h)",
		"Acme: Billing (-4h)",
		"Acme: Billing (4h) extra",
		"Acme: Billing (4.h)",
		"Acme: Billing(4h)",
	}
	for _, title := range titles {
		if _, err := Decode(title); !errors.Is(err, ErrNotDecodable) {
			t.Fatalf("expected ErrNotDecodable for %q, got %v", title, err)
		}
	}
}

func TestDecodeSplitsOnFirstColon(t *testing.T) {
	got, err := Decode("Acme: Billing: phase 2 (6h)")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.ProjectName != "Acme" || got.TaskName != "Billing: phase 2" || got.Hours != 6 {
		t.Fatalf("unexpected decode result: %+v", got)
	}
	if got.LocalID != 0 {
		t.Fatalf("expected decoded row without local id, got %d", got.LocalID)
	}
}
