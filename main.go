package main

import slim "slim/cmd/slim"

func main() {
	slim.Execute()
}
