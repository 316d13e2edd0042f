package nru_test

import (
	"fmt"
	"math/rand/v2"

	nru "github.com/djdv/go-nru"
)

func ExampleClassifier() {
	const (
		pageCount = 4
		pageSize  = 16
	)
	memory, err := nru.NewMemory(pageCount, pageSize)
	if err != nil {
		panic(err)
	}
	if err := memory.Write(0, 1); err != nil { // Page 0.
		panic(err)
	}
	if _, err := memory.Read(20); err != nil { // Page 1.
		panic(err)
	}
	classifier := nru.NewClassifier(
		nru.WithRand(rand.New(rand.NewPCG(1, 1))),
	)
	if err := classifier.Classify(memory.Table()); err != nil {
		panic(err)
	}
	for _, state := range []nru.State{
		nru.NotRefNotMod, nru.NotRefMod,
		nru.RefNotMod, nru.RefMod,
	} {
		fmt.Printf("%s: %v\n", state, classifier.Class(state))
	}
	victim, err := classifier.Victim()
	if err != nil {
		panic(err)
	}
	fmt.Println("victim is clean and unreferenced:", victim == 2 || victim == 3)
	// Output:
	// NotRef_NotMod: [2 3]
	// NotRef_Mod: [0]
	// Ref_NotMod: [1]
	// Ref_Mod: []
	// victim is clean and unreferenced: true
}

func ExampleMemory_Reset() {
	memory, err := nru.NewMemory(2, 16)
	if err != nil {
		panic(err)
	}
	if err := memory.Write(0, 1); err != nil {
		panic(err)
	}
	if _, err := memory.Read(0); err != nil {
		panic(err)
	}
	table := memory.Table()
	before, _ := table.Get(0)
	memory.Reset()
	after, _ := table.Get(0)
	fmt.Println(before, "->", after)
	// Output:
	// Ref_Mod -> NotRef_Mod
}
