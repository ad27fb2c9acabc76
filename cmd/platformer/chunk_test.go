package main

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/world"
)

func TestChunkDocMatchesChunk(t *testing.T) {
	p := world.DefaultParams()
	c := world.Generate(42, 3, p)
	doc := newChunkDoc(42, c, p.ChunkWidth)

	if doc.Index != 3 || doc.Seed != 42 {
		t.Errorf("doc header = %d/%d", doc.Seed, doc.Index)
	}
	if doc.Span[0] != float64(3*p.ChunkWidth) || doc.Span[1] != float64(4*p.ChunkWidth) {
		t.Errorf("span = %v", doc.Span)
	}
	if len(doc.Platforms) != len(c.Platforms) || len(doc.Enemies) != c.EnemyCount() {
		t.Errorf("doc has %d platforms/%d enemies, chunk %d/%d",
			len(doc.Platforms), len(doc.Enemies), len(c.Platforms), c.EnemyCount())
	}
	if doc.Counts["gems"] != len(doc.Gems) {
		t.Errorf("gem count %d, listed %d", doc.Counts["gems"], len(doc.Gems))
	}
}

func TestChunkDocDeterministicYAML(t *testing.T) {
	p := world.DefaultParams()
	a, err := yaml.Marshal(newChunkDoc(7, world.Generate(7, -2, p), p.ChunkWidth))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	b, err := yaml.Marshal(newChunkDoc(7, world.Generate(7, -2, p), p.ChunkWidth))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(a) != string(b) {
		t.Error("same seed and index should print identical YAML")
	}
}
