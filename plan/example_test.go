package plan_test

import (
	"fmt"

	"injection-planner/graph"
	"injection-planner/plan"
)

func register(g *graph.Graph, name string, args ...string) {
	ctorArgs := make([]graph.ConstructorArg, len(args))
	for i, a := range args {
		ctorArgs[i] = graph.ConstructorArg{Type: a}
	}

	def, err := graph.NewConstructorDef(name, ctorArgs...)
	if err != nil {
		panic(err)
	}

	if _, err := g.RegisterClass(graph.ClassSpec{
		Name:                   name,
		Injectable:             true,
		InjectableConstructors: []*graph.ConstructorDef{def},
	}); err != nil {
		panic(err)
	}
}

func ExamplePlanner_Plan() {
	g := graph.New()

	register(g, "app.MemStore")
	register(g, "app.SQLStore")
	register(g, "app.Service", "app.Store")

	if _, err := g.RegisterClass(graph.ClassSpec{Name: "app.Store", Injectable: true}); err != nil {
		panic(err)
	}

	_ = g.Implements("app.MemStore", "app.Store")
	_ = g.Implements("app.SQLStore", "app.Store")

	p := plan.NewPlanner(g, nil)

	ip, err := p.Plan("app.Service")
	if err != nil {
		panic(err)
	}

	fmt.Println(ip)
	fmt.Println(ip.NumAlternatives(), ip.IsAmbiguous())
	fmt.Println(plan.Explain(ip))

	// Output:
	// new app.Service([app.Store = new app.MemStore() | new app.SQLStore()])
	// 2 true
	// cannot inject: ambiguous: app.Service: app.Service has ambiguous arguments: [ Ambiguous subplan app.Store
	//   new app.MemStore()
	//   new app.SQLStore()
	// ] ]
}

func ExampleExplain() {
	g := graph.New()

	register(g, "app.Service", "app.Store")

	if _, err := g.RegisterClass(graph.ClassSpec{Name: "app.Store", Injectable: true}); err != nil {
		panic(err)
	}

	ip, _ := plan.NewPlanner(g, nil).Plan("app.Service")

	fmt.Println(ip.ShallowString())
	fmt.Println(plan.Explain(ip))

	// Output:
	// new app.Service(app.Store: <infeasible>)
	// cannot inject: infeasible: app.Service: app.Service missing argument app.Store
}
