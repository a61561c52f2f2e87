package main

import (
	"math/rand"
	"strings"
)

var (
	gameAdjectives = []string{"tidy", "brave", "sleepy", "lucky", "quiet", "merry", "fuzzy", "spry", "dapper", "jolly"}
	gameColors     = []string{"blue", "red", "green", "amber", "violet", "silver", "coral", "olive", "teal", "ivory"}
	gameAnimals    = []string{"heron", "otter", "badger", "walrus", "lemur", "marmot", "puffin", "gecko", "bison", "quokka"}
)

// RandomGameName returns a three-word name such as "tidy-blue-heron".
func RandomGameName() string {
	words := []string{
		gameAdjectives[rand.Intn(len(gameAdjectives))],
		gameColors[rand.Intn(len(gameColors))],
		gameAnimals[rand.Intn(len(gameAnimals))],
	}
	return strings.Join(words, "-")
}
