//go:build !nru_debug

package nru

const debugging = false

func assert(bool, string) {}
