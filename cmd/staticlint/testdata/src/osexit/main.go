package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("start")
	defer func() {
		os.Exit(2)
	}()
	os.Exit(1) // want "avoid direct os.Exit call in main function of main package"
}

func helper() {
	os.Exit(3)
}
