package styles_test

import (
	"fmt"

	"github.com/sketchwall/sketchwall/pkg/render/styles"
)

func ExampleFitFontSize() {
	// Ten characters in a 110px-wide box: the width bound wins
	size := styles.FitFontSize("abcdefghij", 110, 1000, 64)
	fmt.Printf("%.0f\n", size)

	// A tiny box shrinks the size but never below 1
	tiny := styles.FitFontSize("a very long label", 1, 1, 64)
	fmt.Println(tiny >= 1)
	// Output:
	// 17
	// true
}

func ExampleColorID() {
	// Resource ids strip everything outside [0-9a-zA-Z]
	fmt.Println(styles.ColorID("#60a5fa"))
	fmt.Println(styles.ColorID("rgb(1, 2, 3)"))
	fmt.Println(styles.ColorID(""))
	// Output:
	// 60a5fa
	// rgb123
	// default
}
