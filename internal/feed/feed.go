package feed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"floatbar/internal/domain"
	"floatbar/internal/eventbus"
)

// Generator produces the demo feed the header floats above. Generation is
// deterministic for a given seed so runs are reproducible.
type Generator struct {
	bus eventbus.EventBus // optional, may be nil
}

// NewGenerator creates a new feed generator
func NewGenerator(bus eventbus.EventBus) *Generator {
	return &Generator{bus: bus}
}

var topics = []string{
	"release notes", "status report", "field survey", "maintenance window",
	"retrospective", "changelog digest", "incident review", "weekly roundup",
	"design sketch", "migration log",
}

var words = []string{
	"signal", "window", "buffer", "header", "offset", "frame", "render",
	"scroll", "update", "sample", "band", "cursor", "viewport", "layout",
	"measure", "smooth", "thread", "queue", "batch", "cache", "drain",
	"anchor", "margin", "region", "target", "stream", "state", "delta",
}

// Generate builds count entries from the seed and announces the result on
// the bus
func (g *Generator) Generate(count int, seed int64) []domain.FeedEntry {
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

	entries := make([]domain.FeedEntry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, domain.FeedEntry{
			Index: i,
			Title: fmt.Sprintf("#%03d %s", i+1, capitalize(pick(rng, topics))),
			Date:  base.Add(time.Duration(i) * 26 * time.Hour),
			Body:  paragraphs(rng, 1+rng.Intn(3)),
		})
	}

	if g.bus != nil {
		g.bus.Publish(eventbus.FeedLoadedEvent{Count: len(entries)})
	}

	return entries
}

// paragraphs builds n paragraphs of generated prose
func paragraphs(rng *rand.Rand, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sentences := make([]string, 0, 3)
		for s := 0; s < 2+rng.Intn(2); s++ {
			sentences = append(sentences, sentence(rng))
		}
		out = append(out, strings.Join(sentences, " "))
	}
	return out
}

// sentence builds one sentence of 6-12 words
func sentence(rng *rand.Rand) string {
	n := 6 + rng.Intn(7)
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, pick(rng, words))
	}
	return capitalize(strings.Join(parts, " ")) + "."
}

func pick(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
