package nodelink_test

import (
	"fmt"
	"strings"

	"github.com/DimShadoWWW/npm2ebuild/pkg/render/nodelink"
	"github.com/DimShadoWWW/npm2ebuild/pkg/resolver"
)

func ExampleToDOT() {
	root := &resolver.Package{
		Name:    "express",
		Version: "4.18.2",
		Dependencies: []*resolver.Package{
			{Name: "debug", Version: "2.6.9"},
		},
	}

	dot := nodelink.ToDOT(root, nodelink.Options{})
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "express") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// "express" [label="express\n4.18.2"];
	// "express" -> "debug";
}
