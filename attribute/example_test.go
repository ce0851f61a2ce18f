package attribute_test

import (
	"fmt"

	"github.com/roach88/svgattr/attribute"
)

func ExampleLookup() {
	for _, name := range []string{"fill", "stroke-width", "xlink:href", "Fill", "", "data-custom"} {
		if a, ok := attribute.Lookup(name); ok {
			fmt.Printf("%q -> %s\n", name, a)
		} else {
			fmt.Printf("%q -> unrecognized\n", name)
		}
	}
	// Output:
	// "fill" -> fill
	// "stroke-width" -> stroke-width
	// "xlink:href" -> xlink:href
	// "Fill" -> unrecognized
	// "" -> unrecognized
	// "data-custom" -> unrecognized
}

func ExampleFromName() {
	var a attribute.Attribute
	if attribute.FromName("viewBox", &a) {
		switch a {
		case attribute.ViewBox:
			fmt.Println("viewport")
		default:
			fmt.Println("other")
		}
	}
	// Output: viewport
}
