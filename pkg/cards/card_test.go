package cards

import (
	"encoding/json"
	"testing"
)

func TestParseValidCard(t *testing.T) {
	tests := []struct {
		c    string
		want Card
	}{
		{"kreuz_7", Card{Kreuz, Sieben}},
		{"kreuz_8", Card{Kreuz, Acht}},
		{"pik_9", Card{Pik, Neun}},
		{"pik_10", Card{Pik, Zehn}},
		{"herz_bube", Card{Herz, Bube}},
		{"herz_dame", Card{Herz, Dame}},
		{"karo_koenig", Card{Karo, Koenig}},
		{"karo_ass", Card{Karo, Ass}},
		{"KARO_Ass", Card{Karo, Ass}},
	}
	for _, tc := range tests {
		got, err := ParseCard(tc.c)
		if err != nil {
			t.Errorf("ParseCard(%s)=error(%s), want %s", tc.c, err, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCard(%s)=%s, want %s", tc.c, got, tc.want)
		}
	}
}

func TestParseInvalidCard(t *testing.T) {
	tests := []string{"kreuz7", "kreuz_2", "blatt_7", "_ass", "karo_", "", "karo_ass_ass"}
	for _, tc := range tests {
		got, err := ParseCard(tc)
		if err == nil {
			t.Errorf("ParseCard(%s)=%s, want err", tc, got)
		}
	}
}

func TestCardID(t *testing.T) {
	for _, c := range MakeDeck() {
		got, err := ParseCard(c.ID())
		if err != nil || got != c {
			t.Errorf("ParseCard(%s)=%s,%v, want %s", c.ID(), got, err, c)
		}
	}
	if got := PikKoenig.ID(); got != "pik_koenig" {
		t.Errorf("PikKoenig.ID()=%s, want pik_koenig", got)
	}
}

func TestRankStrength(t *testing.T) {
	order := []Rank{Bube, Dame, Koenig, Ass, Sieben, Acht, Neun, Zehn}
	for i, r := range order {
		if got := r.Strength(); got != i+2 {
			t.Errorf("%s.Strength()=%d, want %d", r, got, i+2)
		}
	}
}

func TestBeats(t *testing.T) {
	tests := []struct {
		c, other Card
		lead     Suit
		want     bool
	}{
		{Karo7, KaroAss, Karo, true},
		{KaroAss, Karo7, Karo, false},
		{Karo10, Karo9, Karo, true},
		{KaroBube, KaroDame, Karo, false},
		{Pik10, Karo7, Karo, false},
		{Karo7, Pik10, Karo, true},
		{Herz10, Pik10, Karo, false},
	}
	for _, tc := range tests {
		if got := tc.c.Beats(tc.other, tc.lead); got != tc.want {
			t.Errorf("%s.Beats(%s,%s)=%t, want %t", tc.c, tc.other, tc.lead, got, tc.want)
		}
	}
}

func TestCardJSON(t *testing.T) {
	raw, err := json.Marshal(Cards{HerzDame, Kreuz7})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `["herz_dame","kreuz_7"]` {
		t.Errorf("Marshal=%s, want [\"herz_dame\",\"kreuz_7\"]", raw)
	}
	var back Cards
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equals(Cards{HerzDame, Kreuz7}) {
		t.Errorf("Unmarshal=%s, want herz_dame kreuz_7", back)
	}
}
