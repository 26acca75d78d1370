package main

import "fmt"

var pt = fmt.Printf
