package frac_test

import (
	"fmt"

	"github.com/kbolino/frac"
)

func ExampleParse() {
	x, err := frac.Parse("3_2/5")
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: 17/5
}

func ExampleParse_negMixed() {
	x, err := frac.Parse("-7_5/8")
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: -51/8
}

func ExampleParse_twoFourths() {
	x, err := frac.Parse("2/4")
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: 2/4
}

func ExampleParse_denomZero() {
	_, err := frac.Parse("1/0")
	fmt.Println(err)
	// Output: frac: parsing operand "1/0": zero denominator
}

func ExampleFraction_Add() {
	x := frac.New(2, 3)
	y := frac.New(9, 11)
	fmt.Println(x.Add(y))
	// Output: 49/33
}

func ExampleFraction_Div() {
	x := frac.New(-11, 8)
	y := frac.New(-11, 8)
	fmt.Println(x.Div(y))
	// Output: 88/88
}

func ExampleNormalize() {
	fmt.Println(frac.Normalize(frac.New(9, 27)))
	fmt.Println(frac.Normalize(frac.New(-13, 9)))
	// Output:
	// 1/3
	// -1_4/9
}

func ExampleMixedNumber_String() {
	fmt.Println(frac.ToMixed(frac.New(27, 9)))
	fmt.Println(frac.ToMixed(frac.New(2, 7)))
	fmt.Println(frac.ToMixed(frac.New(-21, 9)))
	// Output:
	// 3
	// 2/7
	// -2_3/9
}

func ExampleCalculate() {
	v, err := frac.Calculate("1/2", "*", "3_3/4")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 1_7/8
}
