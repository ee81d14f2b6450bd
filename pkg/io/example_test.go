package io_test

import (
	"bytes"
	"fmt"
	"strings"

	boardio "github.com/sketchwall/sketchwall/pkg/io"
)

func ExampleReadJSON() {
	data := `{
		"id": "sprint-42",
		"name": "Sprint 42",
		"shapes": [
			{"id": "api", "type": "rectangle", "x": 0, "y": 0, "width": 160, "height": 90, "label": "API"},
			{"id": "db", "type": "cylinder", "x": 260, "y": 10, "width": 120, "height": 70, "label": "Postgres"}
		]
	}`

	board, err := boardio.ReadJSON(strings.NewReader(data))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Board:", board.ID)
	fmt.Println("Shapes:", len(board.Shapes))
	fmt.Println("First label:", board.Shapes[0].Label)
	// Output:
	// Board: sprint-42
	// Shapes: 2
	// First label: API
}

func ExampleWriteJSON() {
	board, err := boardio.ReadJSON(strings.NewReader(`{
		"id": "b1",
		"shapes": [{"id": "t", "type": "text", "x": 5, "y": 5, "label": "hello"}]
	}`))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Write and re-import: board files round-trip losslessly
	var buf bytes.Buffer
	if err := boardio.WriteJSON(board, &buf); err != nil {
		fmt.Println("Error:", err)
		return
	}
	again, err := boardio.ReadJSON(&buf)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Board:", again.ID)
	fmt.Println("Label:", again.Shapes[0].Label)
	// Output:
	// Board: b1
	// Label: hello
}
