package render_test

import (
	"bytes"
	"fmt"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/render"
	"github.com/sketchwall/sketchwall/pkg/render/styles"
)

func ExampleFragment() {
	board := &canvas.Board{
		ID: "b1",
		Shapes: []canvas.Shape{
			{ID: "r1", Type: canvas.TypeRectangle, X: 0, Y: 0, Width: 100, Height: 50},
		},
	}

	svg, err := render.Fragment(board, render.Options{Style: styles.NameClean})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// The viewBox frames the shape extent padded by 40 on each side
	fmt.Println(string(bytes.SplitN(svg, []byte("\n"), 2)[0]))
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" viewBox="-40.0 -40.0 180.0 130.0" width="800" height="600">
}

func ExampleRender() {
	board := &canvas.Board{
		ID: "b1",
		Shapes: []canvas.Shape{
			{ID: "r1", Type: canvas.TypeRectangle, Width: 100, Height: 50, Label: "Hi"},
		},
	}

	// Pinning the seed makes the hand-drawn jitter reproducible
	opts := render.Options{}.WithSeed(7)
	first, _ := render.Render(board, opts)
	second, _ := render.Render(board, opts)

	fmt.Println("deterministic:", bytes.Equal(first, second))
	// Output:
	// deterministic: true
}
