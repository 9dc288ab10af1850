package engine

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"libdash/internal/domains/report/model/dto"
)

// RateOf returns part as a percentage of total, rounded to one decimal.
// A zero total yields 0 rather than NaN.
func RateOf(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return Round1(float64(part) / float64(total) * 100)
}

// Round1 rounds to one decimal place.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// Capitalize upper-cases the first rune and lower-cases the rest, so chart
// labels render consistently regardless of how the sheet was filled in.
func Capitalize(value string) string {
	if value == "" {
		return value
	}

	lowered := strings.ToLower(value)
	runes := []rune(lowered)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// counter tallies occurrences per key while remembering first-seen order,
// which keeps chart series deterministic across refreshes.
type counter struct {
	keys   []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{
		counts: make(map[string]int),
	}
}

func (c *counter) Add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.keys = append(c.keys, key)
	}

	c.counts[key]++
}

func (c *counter) Count(key string) int {
	return c.counts[key]
}

func (c *counter) Len() int {
	return len(c.keys)
}

// Max returns the key with the highest count. Ties go to the key seen
// first.
func (c *counter) Max() (string, int) {
	best := ""
	bestCount := 0

	for _, key := range c.keys {
		if c.counts[key] > bestCount {
			best = key
			bestCount = c.counts[key]
		}
	}

	return best, bestCount
}

// ChartData emits the series in first-seen order.
func (c *counter) ChartData() dto.ChartData {
	return c.chart(c.keys)
}

// SortedChartData emits the series with keys sorted lexically.
func (c *counter) SortedChartData() dto.ChartData {
	keys := append([]string(nil), c.keys...)
	sort.Strings(keys)

	return c.chart(keys)
}

// NumericChartData emits the series with keys sorted as numbers; keys that
// do not parse sort after the numeric ones.
func (c *counter) NumericChartData() dto.ChartData {
	keys := append([]string(nil), c.keys...)
	sort.SliceStable(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])

		if errA != nil || errB != nil {
			return errA == nil && errB != nil
		}

		return a < b
	})

	return c.chart(keys)
}

// Top emits the n highest-count entries, counts descending, first-seen
// order breaking ties.
func (c *counter) Top(n int) dto.ChartData {
	keys := append([]string(nil), c.keys...)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})

	if len(keys) > n {
		keys = keys[:n]
	}

	return c.chart(keys)
}

// TakeLast emits the series truncated to the n most recently seen keys,
// preserving first-seen order.
func (c *counter) TakeLast(n int) dto.ChartData {
	keys := c.keys
	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}

	return c.chart(keys)
}

func (c *counter) chart(keys []string) dto.ChartData {
	chart := dto.ChartData{
		Labels: make([]string, len(keys)),
		Values: make([]int, len(keys)),
	}

	for i, key := range keys {
		chart.Labels[i] = key
		chart.Values[i] = c.counts[key]
	}

	return chart
}

// relabel applies a display transform to chart labels after ordering has
// been decided on the raw keys.
func relabel(chart dto.ChartData, transform func(string) string) dto.ChartData {
	for i, label := range chart.Labels {
		chart.Labels[i] = transform(label)
	}

	return chart
}
