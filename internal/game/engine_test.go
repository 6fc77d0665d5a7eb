package game

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
)

// stubDict accepts exactly the words it holds.
type stubDict map[string]bool

func (d stubDict) IsValidWord(w string) bool { return d[w] }

// allWords accepts everything.
type allWords struct{}

func (allWords) IsValidWord(string) bool { return true }

// fixedSource always picks the same index.
type fixedSource int

func (f fixedSource) IntN(int) int { return int(f) }

func newRound(root string) *Round {
	return &Round{ID: "test", RootWord: root, UsedWords: []string{}}
}

func TestStartRound_EmptyListIsConfigurationError(t *testing.T) {
	for _, list := range [][]string{nil, {}, {"", "  ", "\t"}} {
		r, err := StartRound(list, nil)
		if !errors.Is(err, ErrEmptyWordList) {
			t.Errorf("StartRound(%q) err = %v, want ErrEmptyWordList", list, err)
		}
		if r != nil {
			t.Errorf("StartRound(%q) produced a round: %+v", list, r)
		}
	}
}

func TestCandidates(t *testing.T) {
	got := Candidates([]string{" Silkworm ", "", "\t", "CARNIVAL\r"})
	if want := []string{"silkworm", "carnival"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %q, want %q", got, want)
	}
	if got := Candidates(nil); len(got) != 0 {
		t.Errorf("Candidates(nil) = %q", got)
	}
}

func TestStartRound_FreshState(t *testing.T) {
	r, err := StartRound([]string{"  SilkWorm \n"}, nil)
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if r.RootWord != "silkworm" {
		t.Errorf("RootWord = %q, want %q", r.RootWord, "silkworm")
	}
	if r.Score != 0 || len(r.UsedWords) != 0 {
		t.Errorf("new round not reset: score=%d used=%v", r.Score, r.UsedWords)
	}
	if len(r.ID) != 16 {
		t.Errorf("ID = %q, want 16 hex chars", r.ID)
	}
}

func TestStartRound_UsesSource(t *testing.T) {
	list := []string{"alpha", "", "bravo", "charlie"}
	r, err := StartRound(list, fixedSource(2))
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	// blank entries are skipped before indexing
	if r.RootWord != "charlie" {
		t.Errorf("RootWord = %q, want charlie", r.RootWord)
	}
}

func TestStartRound_SeededIsDeterministic(t *testing.T) {
	list := []string{"silkworm", "carnival", "absolute", "elephant", "kangaroo"}
	a, _ := StartRound(list, rand.New(rand.NewPCG(7, 11)))
	b, _ := StartRound(list, rand.New(rand.NewPCG(7, 11)))
	if a.RootWord != b.RootWord {
		t.Errorf("same seed picked %q and %q", a.RootWord, b.RootWord)
	}
	if a.ID == b.ID {
		t.Errorf("rounds share ID %q", a.ID)
	}
}

func TestStartRound_CryptoSourceInRange(t *testing.T) {
	list := []string{"one", "two", "three"}
	for i := 0; i < 50; i++ {
		r, err := StartRound(list, CryptoSource{})
		if err != nil {
			t.Fatalf("StartRound: %v", err)
		}
		found := false
		for _, w := range list {
			found = found || w == r.RootWord
		}
		if !found {
			t.Fatalf("RootWord %q not in list", r.RootWord)
		}
	}
}

func TestSubmit_Order(t *testing.T) {
	tests := []struct {
		name   string
		used   []string
		input  string
		dict   Dictionary
		want   Reason
		wantOK bool
	}{
		{"too short", nil, "zz", allWords{}, ReasonTooShort, false},
		{"too short after trim", nil, "  si \n", allWords{}, ReasonTooShort, false},
		{"empty", nil, "", allWords{}, ReasonTooShort, false},
		{"used beats not derivable", []string{"qqq"}, "qqq", allWords{}, ReasonAlreadyUsed, false},
		{"used beats not a word", []string{"silk"}, "silk", stubDict{}, ReasonAlreadyUsed, false},
		{"not derivable beats not a word", nil, "zebra", stubDict{}, ReasonNotDerivable, false},
		{"letter used twice", nil, "sills", allWords{}, ReasonNotDerivable, false},
		{"not a word", nil, "klis", stubDict{"silk": true}, ReasonNotAWord, false},
		{"nil dictionary", nil, "silk", nil, ReasonNotAWord, false},
		{"accepted", nil, "silk", stubDict{"silk": true}, "", true},
		{"accepted uppercase", nil, " SILK ", stubDict{"silk": true}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRound("silkworm")
			r.UsedWords = append(r.UsedWords, tt.used...)
			res := r.Submit(tt.input, tt.dict)
			if res.Accepted != tt.wantOK {
				t.Fatalf("Accepted = %v, want %v (reason %q)", res.Accepted, tt.wantOK, res.Reason)
			}
			if res.Reason != tt.want {
				t.Errorf("Reason = %q, want %q", res.Reason, tt.want)
			}
		})
	}
}

func TestSubmit_TooShortPenalty(t *testing.T) {
	for _, w := range []string{"", "a", "ab", "zz", "é"} {
		r := newRound("silkworm")
		res := r.Submit(w, allWords{})
		if res.Reason != ReasonTooShort {
			t.Errorf("Submit(%q) reason = %q, want too_short", w, res.Reason)
		}
		if r.Score != -Penalty {
			t.Errorf("Submit(%q) score = %d, want %d", w, r.Score, -Penalty)
		}
		if len(r.UsedWords) != 0 {
			t.Errorf("Submit(%q) mutated UsedWords: %v", w, r.UsedWords)
		}
	}
}

func TestSubmit_Scoring(t *testing.T) {
	dict := stubDict{"silk": true, "worms": true, "milk": true}
	r := newRound("silkworm")

	if res := r.Submit("silk", dict); !res.Accepted || res.Points != 4 {
		t.Fatalf("silk: %+v", res)
	}
	if r.Score != 4 {
		t.Errorf("score = %d, want 4", r.Score)
	}
	if res := r.Submit("worms", dict); !res.Accepted || res.Points != 5 {
		t.Fatalf("worms: %+v", res)
	}
	if r.Score != 9 {
		t.Errorf("score = %d, want 9", r.Score)
	}
	r.Submit("zz", dict)
	if r.Score != 4 {
		t.Errorf("score after penalty = %d, want 4", r.Score)
	}
	r.Submit("milk", dict)
	want := []string{"milk", "worms", "silk"}
	if !reflect.DeepEqual(r.UsedWords, want) {
		t.Errorf("UsedWords = %v, want %v", r.UsedWords, want)
	}
}

func TestSubmit_ScoreGoesNegative(t *testing.T) {
	r := newRound("silkworm")
	for i := 0; i < 3; i++ {
		r.Submit("no", allWords{})
	}
	if r.Score != -15 {
		t.Errorf("score = %d, want -15", r.Score)
	}
}

func TestSubmit_RejectionIsIdempotent(t *testing.T) {
	r := newRound("silkworm")
	dict := stubDict{}
	for i := 1; i <= 4; i++ {
		res := r.Submit("klis", dict)
		if res.Reason != ReasonNotAWord {
			t.Fatalf("attempt %d: reason = %q", i, res.Reason)
		}
		if r.Score != -Penalty*i {
			t.Fatalf("attempt %d: score = %d", i, r.Score)
		}
		if len(r.UsedWords) != 0 {
			t.Fatalf("attempt %d: UsedWords = %v", i, r.UsedWords)
		}
	}
}

func TestSubmit_AlreadyUsedAfterAccept(t *testing.T) {
	r := newRound("silkworm")
	dict := stubDict{"silk": true}
	r.Submit("silk", dict)
	res := r.Submit("SILK", dict)
	if res.Reason != ReasonAlreadyUsed {
		t.Errorf("reason = %q, want already_used", res.Reason)
	}
	if r.Score != 4-Penalty {
		t.Errorf("score = %d, want %d", r.Score, 4-Penalty)
	}
	if len(r.UsedWords) != 1 {
		t.Errorf("UsedWords = %v", r.UsedWords)
	}
}

func TestSubmit_RootWordIsAccepted(t *testing.T) {
	// A submission equal to the root word passes every rule and is scored.
	r := newRound("silkworm")
	res := r.Submit("silkworm", allWords{})
	if !res.Accepted || res.Points != 8 {
		t.Errorf("Submit(root) = %+v, want accepted for 8", res)
	}
}

func TestSubmit_WorksDependsOnDictionary(t *testing.T) {
	r := newRound("silkworm")
	if res := r.Submit("worms", stubDict{}); res.Reason != ReasonNotAWord {
		t.Errorf("without dictionary entry: %+v", res)
	}
	r = newRound("silkworm")
	if res := r.Submit("worms", stubDict{"worms": true}); !res.Accepted {
		t.Errorf("with dictionary entry: %+v", res)
	}
	if !reflect.DeepEqual(r.UsedWords, []string{"worms"}) || r.Score != 5 {
		t.Errorf("round = %+v", r)
	}
}

func TestIsDerivable(t *testing.T) {
	tests := []struct {
		word, root string
		want       bool
	}{
		{"silk", "silkworm", true},
		{"worm", "silkworm", true},
		{"mows", "silkworm", true},
		{"silkworm", "silkworm", true},
		{"silkworms", "silkworm", false},
		{"wool", "silkworm", false},
		{"SILK", "silkworm", true},
		{"silk", "SilkWorm", true},
		{"", "silkworm", true},
		{"a", "", false},
		{"café", "éfac", true},
	}
	for _, tt := range tests {
		if got := IsDerivable(tt.word, tt.root); got != tt.want {
			t.Errorf("IsDerivable(%q, %q) = %v, want %v", tt.word, tt.root, got, tt.want)
		}
	}
}

// Derivable words never use a letter more often than the root has it.
func TestIsDerivable_MultisetSubset(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	root := "silkworm"
	letters := "silkwormabc"
	for i := 0; i < 500; i++ {
		var b strings.Builder
		n := 1 + rng.IntN(8)
		for j := 0; j < n; j++ {
			b.WriteByte(letters[rng.IntN(len(letters))])
		}
		w := b.String()
		subset := true
		for _, c := range w {
			if strings.Count(w, string(c)) > strings.Count(root, string(c)) {
				subset = false
			}
		}
		if got := IsDerivable(w, root); got != subset {
			t.Fatalf("IsDerivable(%q) = %v, multiset subset = %v", w, got, subset)
		}
	}
}

func TestAlert(t *testing.T) {
	tests := []struct {
		reason     Reason
		title, msg string
	}{
		{ReasonTooShort, "Word is too short", "Be more original. Lost 5 points."},
		{ReasonAlreadyUsed, "Word used already", "Be more original. Lost 5 points."},
		{ReasonNotDerivable, "Word not possible", "You can't spell that word from 'silkworm'! Lost 5 points."},
		{ReasonNotAWord, "Word not recognized", "You can't just make them up, you know! Lost 5 points."},
		{"", "", ""},
	}
	for _, tt := range tests {
		title, msg := Alert(tt.reason, "silkworm")
		if title != tt.title || msg != tt.msg {
			t.Errorf("Alert(%q) = (%q, %q), want (%q, %q)", tt.reason, title, msg, tt.title, tt.msg)
		}
	}
}
