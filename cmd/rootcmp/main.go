// rootcmp demonstrates the root-finding comparison on the cubic
// f(x) = x³ − 2x − 5 over the bracket [1, 3]. The root is near 2.0945515.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/btracey/rootfind/roots"
)

func main() {
	f := roots.FuncDeriv{
		F:  func(x float64) float64 { return x*x*x - 2*x - 5 },
		DF: func(x float64) float64 { return 3*x*x - 2 },
	}

	result, err := roots.Compare(f, 1, 3, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Bisection steps: " + stepString(result.Bisection))
	fmt.Println("Newton steps: " + stepString(result.Newton))
	fmt.Println("Bisection converged: " + strconv.FormatBool(result.Bisection.Converged))
	fmt.Println("Newton converged: " + strconv.FormatBool(result.Newton.Converged))
}

func stepString(r roots.MethodResult) string {
	n, ok := r.Steps()
	if !ok {
		return "none"
	}
	return strconv.Itoa(n)
}
