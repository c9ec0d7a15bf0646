package turing_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/turing"
)

// ExampleEngine_Simulate subtracts 3 from 10. The difference is left on the
// cells of the right operand.
func ExampleEngine_Simulate() {
	eng, err := turing.New()
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Simulate(context.Background(), "1010-0011")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Verdict, res.Steps)
	fmt.Println(res.History[0])
	fmt.Println(res.History[len(res.History)-1])
	// Output:
	// accepted 66
	// A1010-0011_
	// _#1&&-0111H_
}

// ExampleEngine_Simulate_rejected shows the fast rejection of A < B.
func ExampleEngine_Simulate_rejected() {
	eng, err := turing.New()
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Simulate(context.Background(), "0-1")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Verdict)
	fmt.Println(res.Reason)
	// Output:
	// rejected
	// rejected: left operand is smaller than right operand
}
