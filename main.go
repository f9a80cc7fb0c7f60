package main

import "github.com/toruinaba/structools/cmd"

func main() {
	cmd.Execute()
}
