package app

import (
	"fmt"
	"testing"
)

func TestInitDB(t *testing.T) {
	Config.MongoDB.TimeoutMillis = int64(1234)
	fmt.Println("TestInitDB")
	fmt.Println("TimeouMillis: ", Config.MongoDB.TimeoutMillis)

	// InitDB needs a running mongo instance, so only the config plumbing is
	// exercised here; the wrapper methods are covered through MockDatabase.
}
