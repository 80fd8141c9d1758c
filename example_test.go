package keysort_test

import (
	"fmt"

	"github.com/lanrat/keysort"
)

func ExampleSortBy() {
	type user = map[string]any
	users := []user{
		{"user": "fred", "age": 48},
		{"user": "barney", "age": 34},
		{"user": "fred", "age": 40},
		{"user": "barney", "age": 36},
	}

	sorted := keysort.SortBy(users, keysort.Key[user]("user"), keysort.Key[user]("age"))
	for _, u := range sorted {
		fmt.Printf("%s %d\n", u["user"], u["age"])
	}
	// Output:
	// barney 34
	// barney 36
	// fred 40
	// fred 48
}

func ExampleBy() {
	type city struct {
		Name string
		Pop  int
	}
	cities := []city{
		{"osaka", 2691000},
		{"tokyo", 13960000},
		{"kyoto", 1464000},
	}

	sorted := keysort.SortBy(cities, keysort.By(func(c city) any { return c.Pop }))
	for _, c := range sorted {
		fmt.Println(c.Name)
	}
	// Output:
	// kyoto
	// osaka
	// tokyo
}

func ExampleCompare() {
	fmt.Println(keysort.Compare(1, 2))
	fmt.Println(keysort.Compare("b", "a"))
	fmt.Println(keysort.Compare(nil, 3)) // nil sorts last
	// Output:
	// -1
	// 1
	// 1
}
