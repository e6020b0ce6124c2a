package main

import "github.com/The-PhoenixOS/frameworks-native/cmd"

func main() {
	cmd.Execute()
}
