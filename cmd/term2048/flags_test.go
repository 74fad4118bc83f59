package main

import (
	"strings"
	"testing"
)

func TestScoresRejectsNonPositiveLimit(t *testing.T) {
	t.Cleanup(func() { flagLimit = 10 })

	for _, limit := range []int{0, -3} {
		flagLimit = limit
		err := runScores(nil, nil)
		if err == nil || !strings.Contains(err.Error(), "--limit must be positive") {
			t.Errorf("limit %d: err = %v", limit, err)
		}
	}
}

func TestSimRejectsBadInput(t *testing.T) {
	t.Cleanup(func() {
		flagGames = 100
		flagBoard = ""
	})

	tests := []struct {
		name    string
		games   int
		board   string
		wantErr string
	}{
		{"no games", 0, "", "--games must be positive"},
		{"short board", 1, "2 2 0 0/0 0 0 0", "--board"},
		{"not a tile", 1, "3 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0", "not a tile value"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagGames = tc.games
			flagBoard = tc.board
			err := runSim(nil, nil)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, expected %q", err, tc.wantErr)
			}
		})
	}
}
