package version_test

import (
	"fmt"

	"github.com/DimShadoWWW/npm2ebuild/pkg/version"
)

func ExampleSelectMaximum() {
	latest, err := version.SelectMaximum([]string{"1.0.0-beta1", "1.0.0-rc1", "0.9.8"})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(latest)
	// Output:
	// 1.0.0-rc1
}

func ExampleScheme_Parse() {
	v, err := version.NPM.Parse("2.1.0-4")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	pre, _ := v.Prerelease()
	fmt.Println(v.Segments(), pre.Tag, pre.Number)
	// Output:
	// [2 1 0] - 4
}

func ExampleNewScheme() {
	s, _ := version.NewScheme("-", "alpha", "beta", "rc")
	sorted, _ := s.Sort([]string{"1-1", "1-1rc1", "1-1alpha3", "1-1beta2"})
	fmt.Println(sorted)
	// Output:
	// [1-1alpha3 1-1beta2 1-1rc1 1-1]
}

func ExampleCompare() {
	a, _ := version.NPM.Parse("1.2")
	b, _ := version.NPM.Parse("1.2.0")
	c, _ := version.Compare(a, b)
	fmt.Println(c)
	// Output:
	// -1
}
