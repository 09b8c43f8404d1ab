package trace_test

import (
	"fmt"

	"github.com/katalvlaran/signaltl/signal"
	"github.com/katalvlaran/signaltl/trace"
)

// ExampleSynchronize builds a two-channel trace on one time basis.
func ExampleSynchronize() {
	speed, _ := signal.FromSlices([]float64{0, 1, 2, 3}, []float64{90, 110, 125, 100}, signal.Linear)
	rpm, _ := signal.FromSlices([]float64{0.5, 2.5}, []float64{3000, 4000}, signal.Linear)

	tr, err := trace.Synchronize(map[string]*signal.Signal{"speed": speed, "rpm": rpm})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(tr.Names(), tr.Times())
	s, _ := tr.Get("speed")
	fmt.Println(s)
	// Output:
	// [rpm speed] [0.5 1 2 2.5]
	// [(0.5, 100), (1, 110), (2, 125), (2.5, 112.5)]
}
