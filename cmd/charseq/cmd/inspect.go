package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/charseq/core/error"
	"github.com/msto63/charseq/core/log"
	"github.com/msto63/charseq/utils/seqx"
)

const inspectPrefix = 3

// inspectRow is one query shown by inspect. strict and fallback hold the
// rendered result of the strict and the OrDefault variant; fallback is
// empty for queries without one.
type inspectRow struct {
	label    string
	strict   string
	failed   bool
	fallback string
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <string>",
		Short: "Run every query against a string and show the results",
		Long: `Run every query against string and show the strict result next to
the OrDefault result. Strict queries that fail show their error code.`,
		Args: a.sourceArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				src, _ := a.source(args)
				rows, err := inspectRows(src, a.comparison)
				if err != nil {
					return err
				}
				a.logger.Debug("inspected source", log.Fields{"rows": len(rows)})
				fmt.Fprintln(out, renderInspect(newStyles(out), src, rows))
				return nil
			})
		},
	}
}

func inspectRows(src *seqx.Chars, mode seqx.Comparison) ([]inspectRow, error) {
	// every query shares the absent-source check, so Count reports it once
	n, err := src.Count()
	if err != nil {
		return nil, err
	}
	long, hasAny := int64(n), n > 0
	s := src.String()

	var rows []inspectRow
	add := func(label string, c seqx.Char, err error, fallback seqx.Char) {
		row := inspectRow{label: label, fallback: formatChar(fallback)}
		if err != nil {
			row.strict, row.failed = string(mdwerror.GetCode(err)), true
		} else {
			row.strict = formatChar(c)
		}
		rows = append(rows, row)
	}
	value := func(label, v string) {
		rows = append(rows, inspectRow{label: label, strict: v})
	}

	value("count", strconv.Itoa(n))
	value("long count", strconv.FormatInt(long, 10))
	value("any", strconv.FormatBool(hasAny))

	c, err := src.First()
	d, _ := src.FirstOrDefault()
	add("first", c, err, d)

	c, err = src.Last()
	d, _ = src.LastOrDefault()
	add("last", c, err, d)

	for _, name := range charClassNames() {
		predicate := charClasses[name]
		c, err = src.LastFunc(predicate)
		d, _ = src.LastOrDefaultFunc(predicate)
		add("last "+name, c, err, d)
	}

	indexes := []int{0}
	if n/2 > 0 {
		indexes = append(indexes, n/2)
	}
	if n > 0 {
		indexes = append(indexes, n)
	}
	for _, i := range indexes {
		c, err = src.ElementAt(i)
		d, _ = src.ElementAtOrDefault(i)
		add(fmt.Sprintf("element at %d", i), c, err, d)
	}

	taken, _ := src.Take(inspectPrefix)
	skipped, _ := src.Skip(inspectPrefix)
	value(fmt.Sprintf("take %d", inspectPrefix), strconv.Quote(taken))
	value(fmt.Sprintf("skip %d", inspectPrefix), strconv.Quote(skipped))

	def, _ := src.DefaultIfEmpty()
	value("default if empty", strconv.Quote(def))

	upper := seqx.From(strings.ToUpper(s))
	equal, err := src.SequenceEqualMode(upper, mode)
	if err != nil {
		return nil, err
	}
	value("equal to upper", strconv.FormatBool(equal)+" ("+mode.String()+")")

	return rows, nil
}

func renderInspect(st styles, src *seqx.Chars, rows []inspectRow) string {
	lines := []string{
		st.Title.Render("charseq inspect ") + strconv.Quote(src.String()),
		"",
		st.Label.Render("") + st.Header.Render(fmt.Sprintf("%-18s", "strict")) + " " + st.Header.Render("or default"),
	}

	for _, row := range rows {
		strict := st.Value.Render(fmt.Sprintf("%-18s", row.strict))
		if row.failed {
			strict = st.Failed.Render(fmt.Sprintf("%-18s", row.strict))
		}
		line := st.Label.Render(row.label) + strict
		if row.fallback != "" {
			line += " " + st.Value.Render(row.fallback)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", st.Note.Render("characters are bytes; '\\x00' is the default value"))
	return st.Panel.Render(strings.Join(lines, "\n"))
}
