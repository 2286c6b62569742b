package tally

import "testing"

func FuzzEvaluateDoesNotPanic(f *testing.F) {
	f.Add("")
	f.Add("3 + 5")
	f.Add("2 + 3 * 4")
	f.Add("10 / 0")
	f.Add("3 @ 5")
	f.Add("3 + ")
	f.Add("99999999999999999999 + 1")

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 4096 {
			input = input[:4096]
		}
		_, _ = Evaluate(input)
	})
}
