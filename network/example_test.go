package network_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/network"
)

func ExampleNewView() {
	n, _ := network.Parse(strings.NewReader(`
Geneve;Lausanne;60;33;2
Lausanne;Fribourg;70;45;2
`))
	v, _ := network.NewView(n, network.RenovationCost(network.DefaultRenovationCosts()),
		network.WithBlocked("Fribourg"))
	for _, e := range core.Edges(v) {
		fmt.Printf("%s-%s %v\n", n.CityName(e.From), n.CityName(e.To), e)
	}
	// Output:
	// Geneve-Lausanne 0->1 (360)
	// Lausanne-Fribourg 1->2 (inf)
}
