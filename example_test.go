package sillydelay_test

import (
	"fmt"

	"github.com/volfym/sillydelay"
	"github.com/volfym/sillydelay/pkg/framework/process"
)

func Example() {
	// 100 Hz sample rate with a 20 ms delay time gives a two-frame
	// delay line; fully wet, feedback at its floor.
	p := sillydelay.New(100)
	p.SetParameter(0, 0.01)

	ctx := process.NewContext(p.GetParameters())
	ctx.Input = [][]float32{{1, 0, 0, 0, 0}, {1, 0, 0, 0, 0}}
	ctx.Output = [][]float32{make([]float32, 5), make([]float32, 5)}

	p.ProcessAudio(ctx)

	fmt.Println(ctx.Output[0])
	// Output: [0 0 1 0 0]
}
