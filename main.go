package main

import (
	"github.com/timoth-y/fabnboot/cmd/fabnboot"
)

func main() {
	fabnboot.Execute()
}
