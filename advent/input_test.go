package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestReadInts(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"1\n2\n3\n", []int{1, 2, 3}},
		{"  4 5\n\n6", []int{4, 5, 6}},
		{"0\r\n17\r\n", []int{0, 17}},
	} {
		got, err := readInts(strings.NewReader(tt.in))
		if err != nil {
			t.Errorf("readInts(%q): %s", tt.in, err)
			continue
		}
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("readInts(%q): got %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestReadIntsErrors(t *testing.T) {
	for _, tt := range []struct {
		in      string
		wantErr string
	}{
		{"1\nx\n", `bad integer "x" at token 2`},
		{"1.5", `bad integer "1.5" at token 1`},
		{"3 -2", "negative value -2 at token 2"},
	} {
		_, err := readInts(strings.NewReader(tt.in))
		if err == nil {
			t.Errorf("readInts(%q): got nil error", tt.in)
			continue
		}
		if got := err.Error(); got != tt.wantErr {
			t.Errorf("readInts(%q): got error %q; want %q", tt.in, got, tt.wantErr)
		}
	}
}

func TestReadIntsFile(t *testing.T) {
	got, err := readIntsFile("testdata/day10-small.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{16, 10, 15, 5, 1, 11, 7, 19, 6, 12, 4}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("got %v; want %v", got, want)
	}

	if _, err := readIntsFile(filepath.Join(t.TempDir(), "missing.txt")); !os.IsNotExist(err) {
		t.Errorf("missing file: got err %v; want not-exist error", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(bad, []byte("1\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = readIntsFile(bad)
	if err == nil || !strings.HasPrefix(err.Error(), bad+": ") {
		t.Errorf("bad file: got err %v; want error prefixed with file name", err)
	}
}
