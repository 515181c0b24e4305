package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// executeCommand runs RootCmd with args and stdin, returning what was
// written to stdout and stderr. Flags are reset to their defaults first
// since cobra keeps flag state between runs.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetIn(strings.NewReader(stdin))
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetIn(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// englishSample is ordinary English prose, long enough for key recovery.
const englishSample = `It was a bright cold morning in the early spring, and the market square
was already full of people who had come down from the hills to sell their
goods. There were farmers with baskets of eggs and early greens, a baker who
shouted the price of his bread to anyone who passed, and an old woman who
mended shoes at a small table near the fountain. The children of the town ran
between the stalls, chasing one another and laughing, while their parents
argued over the cost of flour and the weather that was coming. Nobody paid much
attention to the stranger who stood at the corner of the square with a leather
bag over his shoulder. He watched the crowd for a long time before he walked
to the fountain and sat down beside the old woman. She looked at him over the
top of her glasses and asked whether he needed his boots repaired. He said
that he did not, but that he was looking for a house where a family named
Harrow had once lived. The old woman was quiet for a moment. Then she told him
that the house was empty now, that the family had left many years ago, and that
nobody in the town liked to speak of what had happened there. The stranger
thanked her and stood up. He asked her only one more question, which was the
way to the road that led north out of the town, and when she pointed it out to
him he set off without another word. She watched him go until he was lost among
the carts and the horses, and then she went back to her work, though her hands
were not as steady as they had been before he came.`
