package sgmwcs_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs"
	"github.com/matzehuels/stp2sgmwcs/pkg/stp"
)

func ExampleTranslate() {
	src := `header
Section Comment
Section Graph
Nodes 3
Edges 2
E 1 2 5
E 1 3 -4
Section Terminals
Terminals 1
T 2
Section Coordinates
DD 1 0 0
DD 2 1 1
DD 3 2 0
`
	in, err := stp.Read(strings.NewReader(src))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := sgmwcs.Translate(in, sgmwcs.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("# edges")
	_ = res.WriteEdges(os.Stdout)
	fmt.Println("# nodes")
	_ = res.WriteNodes(os.Stdout)
	fmt.Println("# signals")
	_ = res.WriteSignals(os.Stdout)
	// Output:
	// # edges
	// 1 3 S1
	// # nodes
	// 1 S2
	// 2 S0
	// 3 S0
	// # signals
	// S2 inf
	// S0 0
	// S1 inf
}
