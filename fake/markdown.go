package fake

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/syssam/jgd"
)

func italicWord(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return "*" + pick(r, loremWords) + "*", nil
}

func boldWord(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return "**" + pick(r, loremWords) + "**", nil
}

func markdownLink(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	w := pick(r, loremWords)
	return "[" + w + "](https://" + w + ".example.com/" + pick(r, loremWords) + ")", nil
}

// lines returns n lines of lorem words.
func lines(r *rand.Rand, c *catalog, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = sentence(r, c, 2+r.IntN(5))
	}
	return out
}

func bulletPoints(_ *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error) {
	ls := lines(r, c, intBetween(r, args, 3, 7))
	for i := range ls {
		ls[i] = "- " + ls[i]
	}
	return strings.Join(ls, "\n"), nil
}

func listItems(_ *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error) {
	ls := lines(r, c, intBetween(r, args, 3, 7))
	for i := range ls {
		ls[i] = strconv.Itoa(i+1) + ". " + ls[i]
	}
	return strings.Join(ls, "\n"), nil
}

func blockQuoteSingleLine(_ *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error) {
	return "> " + sentence(r, c, intBetween(r, args, 4, 17)), nil
}

func blockQuoteMultiLine(_ *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error) {
	ls := lines(r, c, intBetween(r, args, 2, 5))
	return "> " + strings.Join(ls, "\n> "), nil
}

// markdownCode returns a fenced block of n lines of pseudo code.
func markdownCode(_ *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	n := intBetween(r, args, 3, 7)
	var b strings.Builder
	b.WriteString("```\n")
	for range n {
		b.WriteString(pick(r, loremWords) + " = " + pick(r, loremWords) + "(" + strconv.Itoa(r.IntN(100)) + ")\n")
	}
	b.WriteString("```")
	return b.String(), nil
}
