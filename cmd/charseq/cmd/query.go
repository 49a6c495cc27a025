package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/charseq/core/errors"
	"github.com/msto63/charseq/utils/seqx"
)

// sourceArgs requires the string argument followed by the named extra
// arguments. With --null the string argument is omitted.
func (a *app) sourceArgs(extra ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		names := append([]string{"string"}, extra...)
		if a.null {
			names = names[1:]
		}
		if len(args) == len(names) {
			return nil
		}
		return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, cmd.Name(), strings.Join(args, " "),
			fmt.Sprintf("%d argument(s): %s", len(names), strings.Join(names, " ")))
	}
}

// source splits validated args into the query source and the rest.
func (a *app) source(args []string) (*seqx.Chars, []string) {
	if a.null {
		return nil, args
	}
	return seqx.From(args[0]), args[1:]
}

// query runs fn and logs its duration at debug level when it succeeds.
func (a *app) query(cmd *cobra.Command, fn func(out io.Writer) error) error {
	timer := a.logger.StartTimer(cmd.Name())
	if err := fn(cmd.OutOrStdout()); err != nil {
		return err
	}
	timer.Stop()
	return nil
}

func newTakeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "take <string> <count>",
		Short: "Print the first count characters",
		Long: `Print the first count characters of string. A negative count
yields the empty string; a count beyond the length yields the whole string.`,
		Args: a.sourceArgs("count"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, rest := a.source(args)
				n, err := parseInt("take", "count", rest[0])
				if err != nil {
					return err
				}
				s, err := src.Take(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strconv.Quote(s))
				return nil
			})
		},
	}
}

func newSkipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "skip <string> <count>",
		Short: "Print what remains after the first count characters",
		Args:  a.sourceArgs("count"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, rest := a.source(args)
				n, err := parseInt("skip", "count", rest[0])
				if err != nil {
					return err
				}
				s, err := src.Skip(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strconv.Quote(s))
				return nil
			})
		},
	}
}

func newEqualCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "equal <first> <second>",
		Short: "Report whether two strings are equal under the comparison mode",
		Long: `Report whether two strings are equal. The comparison is taken from
--mode, CHARSEQ_COMPARE_MODE or compare.mode in the config file and is
ordinal by default. The current-culture modes collate in --culture.`,
		Args: a.sourceArgs("second"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				first, rest := a.source(args)
				ok, err := first.SequenceEqualMode(seqx.From(rest[0]), a.comparison)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ok)
				return nil
			})
		},
	}
}

func newCharsCmd(a *app) *cobra.Command {
	var asList bool

	cmd := &cobra.Command{
		Use:   "chars <string>",
		Short: "Print the characters of a string",
		Args:  a.sourceArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, _ := a.source(args)
				if !asList {
					arr, err := src.ToArray()
					if err != nil {
						return err
					}
					fmt.Fprintln(out, formatChars(arr))
					return nil
				}

				list, err := src.ToList()
				if err != nil {
					return err
				}
				for i := 0; i < list.Len(); i++ {
					c, err := list.At(i)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%d\t%s\n", i, formatChar(c))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asList, "list", false, "print one indexed character per line")
	return cmd
}

func newDefaultIfEmptyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "default-if-empty <string>",
		Short: `Print the string, or "\x00" when it is empty`,
		Args:  a.sourceArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, _ := a.source(args)
				s, err := src.DefaultIfEmpty()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strconv.Quote(s))
				return nil
			})
		},
	}
}

func newFirstCmd(a *app) *cobra.Command {
	var orDefault bool

	cmd := &cobra.Command{
		Use:   "first <string>",
		Short: "Print the first character",
		Args:  a.sourceArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, _ := a.source(args)
				get := src.First
				if orDefault {
					get = src.FirstOrDefault
				}
				c, err := get()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatChar(c))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&orDefault, "or-default", false, `print '\x00' instead of failing on an empty string`)
	return cmd
}

func newLastCmd(a *app) *cobra.Command {
	var (
		orDefault bool
		class     string
	)

	cmd := &cobra.Command{
		Use:   "last <string>",
		Short: "Print the last character, optionally the last of a class",
		Long: `Print the last character of string. With --match only characters of
the class are considered: ` + strings.Join(charClassNames(), ", ") + `.`,
		Args: a.sourceArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, _ := a.source(args)

				var (
					c   seqx.Char
					err error
				)
				switch {
				case class == "" && orDefault:
					c, err = src.LastOrDefault()
				case class == "":
					c, err = src.Last()
				default:
					predicate, matchErr := matchClass("last", class)
					if matchErr != nil {
						return matchErr
					}
					if orDefault {
						c, err = src.LastOrDefaultFunc(predicate)
					} else {
						c, err = src.LastFunc(predicate)
					}
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatChar(c))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&orDefault, "or-default", false, `print '\x00' instead of failing`)
	cmd.Flags().StringVar(&class, "match", "", "only consider characters of this class")
	return cmd
}

func newElementAtCmd(a *app) *cobra.Command {
	var orDefault bool

	cmd := &cobra.Command{
		Use:   "element-at <string> <index>",
		Short: "Print the character at a zero-based index",
		Args:  a.sourceArgs("index"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, rest := a.source(args)
				i, err := parseInt("element-at", "index", rest[0])
				if err != nil {
					return err
				}

				var c seqx.Char
				if orDefault {
					c, err = src.ElementAtOrDefault(i)
				} else {
					c, err = src.ElementAt(i)
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatChar(c))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&orDefault, "or-default", false, `print '\x00' for an index out of range`)
	return cmd
}

func newAnyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "any <string>",
		Short: "Report whether the string has any characters",
		Args:  a.sourceArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, _ := a.source(args)
				ok, err := src.Any()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ok)
				return nil
			})
		},
	}
}

func newCountCmd(a *app) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "count <string>",
		Short: "Print the number of characters",
		Args:  a.sourceArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, _ := a.source(args)
				if long {
					n, err := src.LongCount()
					if err != nil {
						return err
					}
					fmt.Fprintln(out, n)
					return nil
				}
				n, err := src.Count()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, n)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "count as a 64-bit value")
	return cmd
}

func newContainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <string> <char>",
		Short: "Report whether the string contains a character",
		Long: `Report whether string contains char. char is a single byte or a Go
escape for one byte such as '\x00' or '\t'.`,
		Args: a.sourceArgs("char"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, rest := a.source(args)
				c, err := parseChar("contains", rest[0])
				if err != nil {
					return err
				}
				ok, err := src.Contains(c)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ok)
				return nil
			})
		},
	}
}
