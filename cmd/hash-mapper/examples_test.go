package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleFile(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "examples"}, parts...)...)
}

func TestExamples_Check(t *testing.T) {
	for _, dir := range []string{"projects", "tree", "orders"} {
		t.Run(dir, func(t *testing.T) {
			out, _, err := execute(t, "", "check", "-m", exampleFile(dir, "mapping.yaml"))
			require.NoError(t, err, out)
			assert.Contains(t, out, "OK:")
		})
	}
}

func TestExamples_Projects(t *testing.T) {
	out, _, err := execute(t, "",
		"normalize", "-m", exampleFile("projects", "mapping.yaml"), "-n", "DetailedProject",
		"--option", "source=example", exampleFile("projects", "project.json"))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"created_at":   "2024-03-01",
		"updated_at":   "2024-05-12",
		"project_name": "Hash Mapper",
		"author": map[string]any{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email":      "ada@example.com",
		},
		"team": []any{
			map[string]any{"first_name": "Grace", "last_name": "Hopper"},
			map[string]any{"first_name": "Alan", "last_name": "Turing"},
		},
		"state":    "active",
		"tag_id":   uint64(17),
		"finance":  map[string]any{"budget": 1200.5},
		"archived": false,
		"source":   "example",
	}, decodeOutput(t, out))
}

func TestExamples_ProjectsRoundTrip(t *testing.T) {
	normalized, _, err := execute(t, "",
		"normalize", "-m", exampleFile("projects", "mapping.yaml"), "-n", "Project",
		exampleFile("projects", "project.json"))
	require.NoError(t, err)

	out, _, err := execute(t, normalized,
		"denormalize", "-m", exampleFile("projects", "mapping.yaml"), "-n", "Project")
	require.NoError(t, err)

	doc := decodeOutput(t, out)
	assert.Equal(t, "Hash Mapper", doc["name"])
	assert.Equal(t, "17", doc["tagid"])
	assert.Equal(t, "active", doc["status"])
	assert.Equal(t, map[string]any{"created": "2024-03-01", "updated": "2024-05-12"}, doc["audit"])
	assert.Equal(t, map[string]any{
		"names":    map[string]any{"first": "Ada", "last": "Lovelace"},
		"contacts": []any{map[string]any{"email": "ada@example.com"}},
	}, doc["author_hash"])
}

func TestExamples_Tree(t *testing.T) {
	out, _, err := execute(t, "",
		"normalize", "-m", exampleFile("tree", "mapping.yaml"), "-f", "yaml", exampleFile("tree", "tree.yaml"))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"label": "ROOT",
		"nodes": []any{
			map[string]any{"label": "DOCS", "nodes": []any{map[string]any{"label": "GUIDE"}}},
			map[string]any{"label": "SRC"},
		},
	}, decodeOutput(t, out))
}

func TestExamples_Orders(t *testing.T) {
	out, _, err := execute(t, "",
		"normalize", "-m", exampleFile("orders", "mapping.yaml"), "-n", "Order",
		"--select", "$.payload", exampleFile("orders", "order.yaml"))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"order_id": "1042",
		"items": []any{
			map[string]any{"code": "A-1", "quantity": uint64(3)},
			map[string]any{"code": "B-2", "quantity": uint64(1)},
		},
		"customer_name": "Mo",
		"street":        "1 Main St",
		"city":          "Springfield",
	}, decodeOutput(t, out))
}
