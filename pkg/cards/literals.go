package cards

// Card literals
var (
	Kreuz7      = Card{Suit: Kreuz, Rank: Sieben}
	Kreuz8      = Card{Suit: Kreuz, Rank: Acht}
	Kreuz9      = Card{Suit: Kreuz, Rank: Neun}
	Kreuz10     = Card{Suit: Kreuz, Rank: Zehn}
	KreuzBube   = Card{Suit: Kreuz, Rank: Bube}
	KreuzDame   = Card{Suit: Kreuz, Rank: Dame}
	KreuzKoenig = Card{Suit: Kreuz, Rank: Koenig}
	KreuzAss    = Card{Suit: Kreuz, Rank: Ass}
	Pik7        = Card{Suit: Pik, Rank: Sieben}
	Pik8        = Card{Suit: Pik, Rank: Acht}
	Pik9        = Card{Suit: Pik, Rank: Neun}
	Pik10       = Card{Suit: Pik, Rank: Zehn}
	PikBube     = Card{Suit: Pik, Rank: Bube}
	PikDame     = Card{Suit: Pik, Rank: Dame}
	PikKoenig   = Card{Suit: Pik, Rank: Koenig}
	PikAss      = Card{Suit: Pik, Rank: Ass}
	Herz7       = Card{Suit: Herz, Rank: Sieben}
	Herz8       = Card{Suit: Herz, Rank: Acht}
	Herz9       = Card{Suit: Herz, Rank: Neun}
	Herz10      = Card{Suit: Herz, Rank: Zehn}
	HerzBube    = Card{Suit: Herz, Rank: Bube}
	HerzDame    = Card{Suit: Herz, Rank: Dame}
	HerzKoenig  = Card{Suit: Herz, Rank: Koenig}
	HerzAss     = Card{Suit: Herz, Rank: Ass}
	Karo7       = Card{Suit: Karo, Rank: Sieben}
	Karo8       = Card{Suit: Karo, Rank: Acht}
	Karo9       = Card{Suit: Karo, Rank: Neun}
	Karo10      = Card{Suit: Karo, Rank: Zehn}
	KaroBube    = Card{Suit: Karo, Rank: Bube}
	KaroDame    = Card{Suit: Karo, Rank: Dame}
	KaroKoenig  = Card{Suit: Karo, Rank: Koenig}
	KaroAss     = Card{Suit: Karo, Rank: Ass}
)
