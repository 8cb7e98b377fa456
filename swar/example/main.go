package main

import (
	"fmt"

	"github.com/aglyzov/go-swar/swar"
)

func main() {
	// a tag set: 7-bit IDs, at most a dozen live at once
	tags := swar.NewDynSet(8)
	for _, id := range []uint64{3, 17, 42, 99, 17} {
		fmt.Printf("add %3d -> %v\n", id, tags.Add(id))
	}
	fmt.Printf("len=%d words=%d has(42)=%v has(5)=%v\n",
		tags.Len(), tags.WordCount(), tags.Has(42), tags.Has(5))

	println("------")

	// an 11-bit dedup buffer split by the value's top bit
	seen := swar.NewBucketedSet(24)
	for _, id := range []uint16{1023, 1024, 700, 1800, 700} {
		fmt.Printf("add %4d -> %v\n", id, seen.Add(id))
	}
	fmt.Printf("len=%d has(1023)=%v has(1024)=%v has(2000)=%v\n",
		seen.Len(), seen.Has(1023), seen.Has(1024), seen.Has(2000))
}
