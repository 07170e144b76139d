// Package report renders a round's showdown into human-readable text: a win
// or draw statement followed by a per-hand breakdown that tags the kickers
// that decided the comparison and parenthesises cards that did not matter.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivhe/cards/internal/deck"
	"github.com/olivhe/cards/internal/evaluator"
	"github.com/olivhe/cards/internal/showdown"
	"github.com/olivhe/cards/internal/simulator"
)

const delimiter = "-<>-<>-<>-<>-<>-<>-<>-<>-"

// Renderer renders round outcomes. A zero Renderer renders plain text; use
// NewRenderer(true) for a styled terminal variant.
type Renderer struct {
	delim  lipgloss.Style
	win    lipgloss.Style
	header lipgloss.Style
	tag    lipgloss.Style
}

// NewRenderer creates a renderer. colored selects the styled variant.
func NewRenderer(colored bool) *Renderer {
	r := &Renderer{}
	if colored {
		r.delim = lipgloss.NewStyle().Faint(true)
		r.win = lipgloss.NewStyle().Bold(true)
		r.header = lipgloss.NewStyle().Underline(true)
		r.tag = lipgloss.NewStyle().Italic(true)
	}
	return r
}

// Render returns the multi-line comparison of the round's three hands.
func (r *Renderer) Render(outcome simulator.RoundOutcome) string {
	var b strings.Builder
	b.WriteString(r.delim.Render(delimiter))
	b.WriteString("\n")
	b.WriteString(r.win.Render(winStatement(outcome)))

	for pos := 1; pos <= showdown.NumPlayers; pos++ {
		b.WriteString("\n")
		b.WriteString(r.delim.Render(delimiter))
		b.WriteString("\n")
		b.WriteString(r.renderHand(outcome, pos))
	}

	b.WriteString("\n")
	b.WriteString(r.delim.Render(delimiter))
	return b.String()
}

// WriteAnalysis writes a timestamped analysis document for a single round.
func (r *Renderer) WriteAnalysis(w io.Writer, outcome simulator.RoundOutcome, now time.Time) error {
	plain := NewRenderer(false)
	_, err := fmt.Fprintf(w,
		"POKER GAME ANALYSIS - %s\n\n"+
			"This file contains the analysis of a poker game, played with the following settings:\n"+
			"'Three players each receive a random 5-card poker hand picked from a single deck.'\n%s\n",
		now.Format("2006-01-02-15:04:05"), plain.Render(outcome))
	return err
}

func winStatement(outcome simulator.RoundOutcome) string {
	res := outcome.Result
	first := res.Winners[0]
	desc := describeHand(res.Ranks[first-1], outcome.Hands[first-1])
	if res.IsTie() {
		return fmt.Sprintf("Draw between the %s hand (%s)", joinOrdinals(res.Winners), desc)
	}
	return fmt.Sprintf("The %s hand wins with %s.", ordinalWord(first), desc)
}

// describeHand renders the prose description of a rank. A flush traditionally
// reads by its suit ("Flush, clubs"); HandRank carries no suit, so the suit
// comes from the cards here.
func describeHand(rank evaluator.HandRank, hand []deck.Card) string {
	if rank.Category == evaluator.Flush && len(hand) > 0 {
		return fmt.Sprintf("Flush, %s", hand[0].Suit.Name())
	}
	return rank.Describe()
}

func (r *Renderer) renderHand(outcome simulator.RoundOutcome, pos int) string {
	res := outcome.Result
	rank := res.Ranks[pos-1]
	cards := orderForRank(outcome.Hands[pos-1], rank)
	tagged := taggedKickers(res, pos)

	var b strings.Builder
	b.WriteString(r.header.Render(fmt.Sprintf("%s hand: %s",
		ordinal(pos), describeHand(rank, outcome.Hands[pos-1]))))
	if !res.IsTie() && pos == res.Winners[0] {
		b.WriteString("\nWinning hand")
	} else if res.IsTie() && contains(res.Winners, pos) {
		b.WriteString("\nHand included in the winning draw")
	}
	b.WriteString("\nThe hand includes the following cards:")

	kickers := kickerPositions(rank.Category)
	// Main cards first, then tagged kickers, then the cards that played no part.
	for i, c := range cards {
		if kickers[i] {
			continue
		}
		b.WriteString(fmt.Sprintf("\n - %s", c.Describe()))
	}
	for i, c := range cards {
		if !kickers[i] {
			continue
		}
		if tagged[i] {
			b.WriteString(fmt.Sprintf("\n - %s %s", c.Describe(), r.tag.Render("(kicker)")))
		} else {
			b.WriteString(fmt.Sprintf("\n(- %s)", c.Describe()))
		}
	}
	return b.String()
}

// taggedKickers returns, per tie-break position, whether that card should be
// tagged as a deciding kicker in the given player's section. Only hands that
// were actually contested get tags: the winner set plus any hand sharing the
// winning description.
func taggedKickers(res showdown.Result, pos int) [evaluator.HandSize]bool {
	var tags [evaluator.HandSize]bool

	best := res.Ranks[res.Winners[0]-1]
	rank := res.Ranks[pos-1]
	if rank.Category != best.Category || rank.Describe() != best.Describe() {
		return tags
	}

	kickers := kickerPositions(rank.Category)
	depth := res.TieBreakDepth
	if res.IsTie() {
		// A draw was only declared after every element compared equal, so
		// every kicker took part.
		depth = evaluator.HandSize
	}
	for i := 0; i < depth; i++ {
		if kickers[i] {
			tags[i] = true
		}
	}
	return tags
}

// kickerPositions maps each tie-break position to whether it holds a kicker
// (as opposed to a card of the hand's main combination) for the category.
func kickerPositions(c evaluator.Category) [evaluator.HandSize]bool {
	switch c {
	case evaluator.Flush:
		return [evaluator.HandSize]bool{true, true, true, true, true}
	case evaluator.HighCard:
		return [evaluator.HandSize]bool{false, true, true, true, true}
	case evaluator.OnePair:
		return [evaluator.HandSize]bool{false, false, true, true, true}
	case evaluator.ThreeOfAKind:
		return [evaluator.HandSize]bool{false, false, false, true, true}
	case evaluator.TwoPair, evaluator.FourOfAKind:
		return [evaluator.HandSize]bool{false, false, false, false, true}
	default: // straights and full houses have no kickers
		return [evaluator.HandSize]bool{}
	}
}

// orderForRank sorts a hand's cards parallel to the rank's tie-break
// sequence: multiplicity desc, then rank desc, then suit for determinism.
// Straights sort by descending rank with the wheel's ace last.
func orderForRank(hand []deck.Card, rank evaluator.HandRank) [evaluator.HandSize]deck.Card {
	var out [evaluator.HandSize]deck.Card
	cards := make([]deck.Card, len(hand))
	copy(cards, hand)

	if rank.Category == evaluator.Straight || rank.Category == evaluator.StraightFlush {
		wheel := rank.TieBreaks[0] == deck.Five
		sort.Slice(cards, func(i, j int) bool {
			ri, rj := straightValue(cards[i].Rank, wheel), straightValue(cards[j].Rank, wheel)
			return ri > rj
		})
	} else {
		counts := make(map[deck.Rank]int, len(cards))
		for _, c := range cards {
			counts[c.Rank]++
		}
		sort.Slice(cards, func(i, j int) bool {
			ci, cj := counts[cards[i].Rank], counts[cards[j].Rank]
			if ci != cj {
				return ci > cj
			}
			if cards[i].Rank != cards[j].Rank {
				return cards[i].Rank > cards[j].Rank
			}
			return cards[i].Suit < cards[j].Suit
		})
	}

	copy(out[:], cards)
	return out
}

func straightValue(r deck.Rank, wheel bool) int {
	if wheel && r == deck.Ace {
		return 1
	}
	return int(r)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

func ordinalWord(n int) string {
	switch n {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

func joinOrdinals(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = ordinal(p)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
