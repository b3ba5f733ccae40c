package strmatch_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/strmatch"
)

func ExampleEncode() {
	text := strmatch.Encode([]string{"Hello", "World"})
	back, _ := strmatch.Decode(text)
	fmt.Println(text)
	fmt.Println(back)
	// Output:
	// 5#Hello5#World
	// [Hello World]
}

func ExampleGroupAnagrams() {
	fmt.Println(strmatch.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"}))
	// Output:
	// [[eat tea ate] [tan nat] [bat]]
}
