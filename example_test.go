package splitbatch_test

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MasterOfBinary/splitbatch/buffer"
	"github.com/MasterOfBinary/splitbatch/spliterator"
	"github.com/MasterOfBinary/splitbatch/stream"
)

func Example() {
	// 5000 numbers in groups of 5, traversed by up to 4 goroutines
	s, err := buffer.Buffer(spliterator.Range(0, 5000), 5, 5)
	if err != nil {
		fmt.Println(err)
		return
	}

	var groups, elements atomic.Int64
	err = stream.ForEach(context.Background(), s, func(group []int64) error {
		for i := 1; i < len(group); i++ {
			if group[i] != group[i-1]+1 {
				return fmt.Errorf("group %v is not consecutive", group)
			}
		}
		groups.Add(1)
		elements.Add(int64(len(group)))
		return nil
	}, &stream.Options{Concurrency: 4, TargetSize: 125})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("groups:", groups.Load())
	fmt.Println("elements:", elements.Load())
	// Output:
	// groups: 1000
	// elements: 5000
}

func Example_collect() {
	// The 11 elements are split into two parts of 5 and 6 elements, and
	// each part absorbs its own tail
	s, err := buffer.Buffer(spliterator.Map(spliterator.Range(1, 12), func(v int64) string {
		return fmt.Sprintf("#%d", v)
	}), 3, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	groups, err := stream.Collect[[]string](context.Background(), s, &stream.Options{TargetSize: 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, group := range groups {
		fmt.Println(group)
	}
	// Output:
	// [#1 #2 #3 #4 #5]
	// [#6 #7 #8 #9 #10 #11]
}
