package main

import (
	"coocviz/viz"
)

func main() {
	viz.FullTimes()
}
