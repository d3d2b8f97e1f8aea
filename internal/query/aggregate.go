package query

import (
	"sort"
	"strconv"

	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/dataset"
)

// Row is one entry of an aggregation table: a group key, an optional
// secondary key, and the derived value.
type Row struct {
	Key    string  `json:"key"`
	SubKey string  `json:"sub_key,omitempty"`
	Value  float64 `json:"value"`
}

// Table is a grouped aggregation computed from the filtered relation.
// Rows are sorted by key then sub-key so repeated computations with
// identical input produce identical output.
type Table []Row

type keyFunc func(dataset.Record) (key, subKey string)
type valueFunc func(dataset.Record) float64

type accumulator struct {
	sum   float64
	count int
}

// groupBy accumulates sum and count per group key pair, in a single
// pass over the filtered relation.
func groupBy(records []dataset.Record, key keyFunc, value valueFunc) map[[2]string]accumulator {
	groups := make(map[[2]string]accumulator)
	for _, r := range records {
		k, sk := key(r)
		acc := groups[[2]string{k, sk}]
		if value != nil {
			acc.sum += value(r)
		}
		acc.count++
		groups[[2]string{k, sk}] = acc
	}
	return groups
}

// MeanBy computes the mean of a value per group. Groups with no rows
// simply do not appear, so a mean is never taken over an empty group.
func MeanBy(records []dataset.Record, key keyFunc, value valueFunc) Table {
	groups := groupBy(records, key, value)
	table := make(Table, 0, len(groups))
	for k, acc := range groups {
		table = append(table, Row{Key: k[0], SubKey: k[1], Value: acc.sum / float64(acc.count)})
	}
	sortTable(table)
	return table
}

// SumBy computes the sum of a value per group.
func SumBy(records []dataset.Record, key keyFunc, value valueFunc) Table {
	groups := groupBy(records, key, value)
	table := make(Table, 0, len(groups))
	for k, acc := range groups {
		table = append(table, Row{Key: k[0], SubKey: k[1], Value: acc.sum})
	}
	sortTable(table)
	return table
}

// CountBy counts rows per group.
func CountBy(records []dataset.Record, key keyFunc) Table {
	groups := groupBy(records, key, nil)
	table := make(Table, 0, len(groups))
	for k, acc := range groups {
		table = append(table, Row{Key: k[0], SubKey: k[1], Value: float64(acc.count)})
	}
	sortTable(table)
	return table
}

// sortTable orders rows by key then sub-key. Keys that are all numeric
// (years) compare numerically so "2010" sorts before "201".
func sortTable(table Table) {
	sort.Slice(table, func(i, j int) bool {
		if table[i].Key != table[j].Key {
			return keyLess(table[i].Key, table[j].Key)
		}
		return keyLess(table[i].SubKey, table[j].SubKey)
	})
}

func keyLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
