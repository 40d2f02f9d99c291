package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"forthlet"
)

func main() {
	var trace bool
	var limit uint
	var expr string
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.UintVar(&limit, "limit", 0, "bound the data stack")
	flag.StringVar(&expr, "e", "", "evaluate one line and exit")
	flag.Parse()

	var opts []forthlet.Option
	if trace {
		opts = append(opts, forthlet.WithLogf(log.Printf))
	}
	if limit != 0 {
		opts = append(opts, forthlet.WithStackLimit(limit))
	}
	ev := forthlet.New(opts...)

	if expr != "" {
		stack, err := ev.Process(expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
			os.Exit(1)
		}
		fmt.Println(formatStack(stack))
		return
	}

	fmt.Println("forthlet, a little line forth")
	sc := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); sc.Scan(); fmt.Print("> ") {
		stack, err := ev.Process(sc.Text())
		if err != nil {
			// a failed line never poisons the evaluator; keep reading
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
			continue
		}
		fmt.Println(formatStack(stack))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
	fmt.Println()
}

func formatStack(stack []int) string {
	parts := make([]string, len(stack))
	for i, val := range stack {
		parts[i] = strconv.Itoa(val)
	}
	return "<" + strings.Join(parts, " ") + ">"
}
