package export_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/secretsanta/export"
	"github.com/katalvlaran/secretsanta/matching"
)

func ExampleWriteCSV() {
	a := matching.Assignment{
		{Giver: "Alice", Receiver: "Bob"},
		{Giver: "Bob", Receiver: "Alice"},
	}
	_ = export.WriteCSV(os.Stdout, a)
	// Output:
	// giver,receiver
	// Alice,Bob
	// Bob,Alice
}

func ExampleShareMessage() {
	fmt.Println(export.ShareMessage(matching.Pair{Giver: "Dana", Receiver: "Eli"}))
	// Output: Hi Dana! You are the Secret Santa for Eli 🤫
}
