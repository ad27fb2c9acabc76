package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

var chunkCmd = &cobra.Command{
	Use:   "chunk <index>",
	Short: "Print a generated chunk as YAML",
	Long: `Generate chunk <index> for the world seed and print its contents.
The same seed and index always print the same chunk.

Rectangles are [x, y, width, height] in world units.

Examples:
  platformer chunk 0
  platformer chunk --seed 42 -- -2`,
	Args: cobra.ExactArgs(1),
	Run:  runChunk,
}

// chunkDoc is the YAML shape of a generated chunk.
type chunkDoc struct {
	Seed      int64          `yaml:"seed"`
	Index     int            `yaml:"index"`
	Span      []float64      `yaml:"span,flow"`
	Platforms []rectDoc      `yaml:"platforms,flow"`
	Moving    []movingDoc    `yaml:"moving_platforms,omitempty"`
	Spikes    []rectDoc      `yaml:"spikes,omitempty,flow"`
	Gems      []rectDoc      `yaml:"gems,omitempty,flow"`
	Enemies   []enemyDoc     `yaml:"enemies,omitempty"`
	Counts    map[string]int `yaml:"counts"`
}

type rectDoc []float64

type movingDoc struct {
	Rect  rectDoc   `yaml:"rect,flow"`
	Range []float64 `yaml:"range,flow"`
	Speed float64   `yaml:"speed"`
}

type enemyDoc struct {
	Rect       rectDoc   `yaml:"rect,flow"`
	Patrol     []float64 `yaml:"patrol,flow"`
	Speed      float64   `yaml:"speed"`
	Aggressive bool      `yaml:"aggressive"`
	HP         int       `yaml:"hp"`
}

func rectOf(r core.RectF) rectDoc {
	return rectDoc{r.X, r.Y, r.W, r.H}
}

func newChunkDoc(seed int64, c *world.Chunk, width int) chunkDoc {
	doc := chunkDoc{
		Seed:  seed,
		Index: c.Index,
		Span:  []float64{float64(c.Index * width), float64((c.Index + 1) * width)},
		Counts: map[string]int{
			"platforms": len(c.Platforms),
			"moving":    len(c.Moving),
			"spikes":    len(c.Spikes),
			"gems":      c.GemCount(),
			"enemies":   c.EnemyCount(),
		},
	}
	for _, p := range c.Platforms {
		doc.Platforms = append(doc.Platforms, rectOf(p.Rect))
	}
	for _, mp := range c.Moving {
		doc.Moving = append(doc.Moving, movingDoc{
			Rect:  rectOf(mp.Rect),
			Range: []float64{mp.RangeMin, mp.RangeMax},
			Speed: mp.Speed,
		})
	}
	for _, s := range c.Spikes {
		doc.Spikes = append(doc.Spikes, rectOf(s.Rect))
	}
	for _, g := range c.Gems {
		if g != nil {
			doc.Gems = append(doc.Gems, rectOf(g.Rect))
		}
	}
	for _, e := range c.Enemies {
		if e == nil {
			continue
		}
		doc.Enemies = append(doc.Enemies, enemyDoc{
			Rect:       rectOf(e.Rect),
			Patrol:     []float64{e.PatrolMin, e.PatrolMax},
			Speed:      e.Speed,
			Aggressive: e.Aggressive,
			HP:         e.HP,
		})
	}
	return doc
}

func runChunk(_ *cobra.Command, args []string) {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		exitf("invalid chunk index %q", args[0])
	}

	rt, err := setup(os.Stderr)
	if err != nil {
		exitf("%v", err)
	}
	defer rt.Close()

	seed := rt.seed()
	params := platformer.ParamsFromConfig(rt.cfg)
	doc := newChunkDoc(seed, world.Generate(seed, index, params), params.ChunkWidth)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		rt.Close()
		exitf("encoding chunk: %v", err)
	}
	if err := enc.Close(); err != nil {
		rt.Close()
		exitf("encoding chunk: %v", err)
	}
}
