package main

import "github.com/chinmayanaik123/lifeOS/cmd/lifeos/root"

func main() {
	root.Execute()
}
