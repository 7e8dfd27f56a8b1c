package violation_test

import (
	"fmt"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/metrics"
	"github.com/matzehuels/mainseq/pkg/violation"
)

func ExampleCheck() {
	// A stable "domain" component depending on a volatile "adapters" one.
	g := component.New()
	_ = g.Add(component.Component{ID: "web"}, "domain")
	_ = g.Add(component.Component{ID: "jobs"}, "domain")
	_ = g.Add(component.Component{ID: "domain"}, "adapters")
	_ = g.Add(component.Component{ID: "adapters"}, "db", "queue")
	_ = g.Add(component.Component{ID: "db"})
	_ = g.Add(component.Component{ID: "queue"})

	err := violation.Check(g, metrics.Instability(g), violation.SDP)
	fmt.Println(err)
	// Output:
	// Component domain is violating the stable dependencies principle
}
