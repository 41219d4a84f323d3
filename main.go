package main

import "github.com/sk21munashe/vitality-daily-sub000/cmd/vitality"

func main() {
	vitality.Execute()
}
