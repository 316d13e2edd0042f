//go:build nru_debug

package nru

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
