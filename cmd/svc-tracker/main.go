package main

import "github.com/Leozerbib/gile-back-sub000/internal/runtime"

func main() {
	runtime.New().Run()
}
