package main

import (
	"fmt"
	"os"

	"github.com/wesley-day/Calculator/math"
	"github.com/wesley-day/Calculator/utils"
)

func main() {
	if err := utils.LoadConfig(); err != nil {
		utils.PrintError("config", err)
		os.Exit(1)
	}

	utils.PrintInfo("Calculator Result:")
	for _, n := range []uint64{1, 2, 97, 7919, 7920} {
		label := fmt.Sprintf("prime(%d)", n)
		isPrime, err := math.CheckedIsPrime(n)
		if err != nil {
			utils.PrintError(label, err)
			continue
		}
		utils.PrintResult(label, isPrime)
	}
	for _, n := range []int{1, 10, math.MaxFibonacciIndex, math.MaxFibonacciIndex + 1} {
		label := fmt.Sprintf("fib(%d)", n)
		v, err := math.CheckedNthFibonacci(n)
		if err != nil {
			utils.PrintError(label, err)
			continue
		}
		utils.PrintResult(label, v)
	}

	report("gcf(84, 36)", func() (uint64, error) { return math.GCF(84, 36), nil })
	report("lcm(4, 6)", func() (uint64, error) { return math.LCM(4, 6) })
	report("C(52, 5)", func() (uint64, error) { return math.Combinations(52, 5) })
	report("P(10, 3)", func() (uint64, error) { return math.Permutations(10, 3) })
	report("20!", func() (uint64, error) { return math.Factorial(20) })
	report("21!", func() (uint64, error) { return math.Factorial(21) })
	report("2^63", func() (uint64, error) { return math.Power(2, 63) })
	report("7 / 0", func() (uint64, error) { return math.Divide(7, 0) })
}

func report(label string, f func() (uint64, error)) {
	utils.PrintDebug("evaluating %s", label)
	v, err := f()
	if err != nil {
		utils.PrintError(label, err)
		return
	}
	utils.PrintResult(label, v)
}
