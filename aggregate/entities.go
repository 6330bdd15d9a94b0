package aggregate

import (
	"sort"

	"go-ytlens/types"
)

// DefaultTopEntities is how many entities the dashboard charts.
const DefaultTopEntities = 30

// counter counts keys and remembers the order they were first seen in.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// all returns every key in first-seen order.
func (c *counter) all() types.LabelCounts {
	out := types.LabelCounts{
		Labels: make([]string, 0, len(c.order)),
		Counts: make([]int, 0, len(c.order)),
	}
	for _, k := range c.order {
		out.Labels = append(out.Labels, k)
		out.Counts = append(out.Counts, c.counts[k])
	}
	return out
}

// mostCommon returns the n highest counts; equal counts keep first-seen order.
func (c *counter) mostCommon(n int) types.LabelCounts {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if n >= 0 && n < len(keys) {
		keys = keys[:n]
	}

	out := types.LabelCounts{
		Labels: make([]string, 0, len(keys)),
		Counts: make([]int, 0, len(keys)),
	}
	for _, k := range keys {
		out.Labels = append(out.Labels, k)
		out.Counts = append(out.Counts, c.counts[k])
	}
	return out
}

// CountEntities flattens every comment's NERList and returns the top n
// entity texts by count.
func CountEntities(comments []types.Comment, n int) types.LabelCounts {
	c := newCounter()
	for _, comment := range comments {
		for _, entity := range comment.NERList {
			c.add(entity, 1)
		}
	}
	return c.mostCommon(n)
}

// CountEntityTypes sums NERCount across comments. Labels are listed in the
// order they first appear while walking the table.
func CountEntityTypes(comments []types.Comment) types.LabelCounts {
	c := newCounter()
	for _, comment := range comments {
		for _, label := range typeOrder(comment) {
			c.add(label, comment.NERCount[label])
		}
	}
	return c.all()
}

// typeOrder lists a comment's entity types in the order its entities were
// detected, followed by any types only present in NERCount.
func typeOrder(comment types.Comment) []string {
	seen := make(map[string]bool, len(comment.NERCount))
	labels := make([]string, 0, len(comment.NERCount))
	for _, e := range comment.NER {
		if _, ok := comment.NERCount[e.Type]; ok && !seen[e.Type] {
			seen[e.Type] = true
			labels = append(labels, e.Type)
		}
	}

	var rest []string
	for label := range comment.NERCount {
		if !seen[label] {
			rest = append(rest, label)
		}
	}
	sort.Strings(rest)
	return append(labels, rest...)
}

// Entities builds both entity views for the dashboard.
func Entities(comments []types.Comment, topN int) types.EntityAggregate {
	if topN <= 0 {
		topN = DefaultTopEntities
	}
	return types.EntityAggregate{
		TopEntities: CountEntities(comments, topN),
		EntityTypes: CountEntityTypes(comments),
	}
}
