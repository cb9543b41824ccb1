package match

import "testing"

func TestRank(t *testing.T) {
	titles := []string{
		"Will it rain in London tomorrow?",
		"Will bitcoin exceed 100k this year?",
		"Will tomorrow rain in London?",
	}

	t.Run("PermutedTokensScoreHighest", func(t *testing.T) {
		got := Rank("will it rain in london tomorrow", titles, 60)
		if len(got) == 0 {
			t.Fatal("expected at least one match")
		}
		if got[0].Index != 0 && got[0].Index != 2 {
			t.Errorf("best match index=%d, want one of the rain questions", got[0].Index)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Score > got[i-1].Score {
				t.Errorf("scores out of order: %v", got)
			}
		}
	})

	t.Run("CaseAndPunctuationIgnored", func(t *testing.T) {
		got := Rank("will it rain in london tomorrow", titles, 60)
		if len(got) == 0 {
			t.Fatal("expected matches")
		}
		if got[0].Index != 0 {
			t.Errorf("best match index=%d, want 0 (same words as the query)", got[0].Index)
		}
		if got[0].Score != 100 {
			t.Errorf("score=%d want 100: capitals and the trailing ? should not count", got[0].Score)
		}
	})

	t.Run("ThresholdFilters", func(t *testing.T) {
		got := Rank("will it rain in london tomorrow", titles, 101)
		if len(got) != 0 {
			t.Errorf("threshold 101 should match nothing, got %v", got)
		}
	})

	t.Run("EmptyTitles", func(t *testing.T) {
		if got := Rank("anything", nil, 60); len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})
}

func TestRankTiesKeepOriginalOrder(t *testing.T) {
	titles := []string{
		"Will the launch slip to Q3?",
		"Will the launch slip to Q3?",
		"Will the launch slip to Q3?",
	}
	got := Rank("will the launch slip to q3", titles, 60)
	if len(got) != 3 {
		t.Fatalf("got %d matches, want 3", len(got))
	}
	for i, m := range got {
		if m.Index != i {
			t.Errorf("tie order broken: position %d has index %d", i, m.Index)
		}
		if m.Score != got[0].Score {
			t.Errorf("identical titles should tie, scores=%v", got)
		}
	}
}
