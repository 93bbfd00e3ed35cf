package cmd

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	t.Parallel()

	want := map[string]bool{
		"scan":  false,
		"graph": false,
		"watch": false,
	}

	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}

	for name, registered := range want {
		if !registered {
			t.Fatalf("subcommand %q is not registered", name)
		}
	}
}
