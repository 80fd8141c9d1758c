package keysort_test

import (
	"math/rand"
	"testing"

	"github.com/lanrat/keysort"
)

func makeBenchRecords(n int) []record {
	rnd := rand.New(rand.NewSource(99))
	items := make([]record, n)
	for i := range items {
		items[i] = record{
			"user": string(rune('a' + rnd.Intn(26))),
			"age":  rnd.Intn(100),
		}
	}
	return items
}

func BenchmarkSortBy(b *testing.B) {
	items := makeBenchRecords(10000)
	criteria := []keysort.Criterion[record]{keysort.Key[record]("user"), keysort.Key[record]("age")}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		keysort.SortBy(items, criteria...)
	}
}

func BenchmarkSortByAccessor(b *testing.B) {
	items := makeBenchRecords(10000)
	criteria := []keysort.Criterion[record]{
		keysort.By(func(r record) any { return r["user"] }),
		keysort.By(func(r record) any { return r["age"] }),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		keysort.SortBy(items, criteria...)
	}
}

func BenchmarkCompare(b *testing.B) {
	for i := 0; i < b.N; i++ {
		keysort.Compare(i&0xff, (i+1)&0xff)
	}
}
