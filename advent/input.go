package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// readInts reads whitespace-separated non-negative integers from r.
func readInts(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var ns []int
	for i := 1; scanner.Scan(); i++ {
		tok := scanner.Text()
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q at token %d", tok, i)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative value %d at token %d", n, i)
		}
		ns = append(ns, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ns, nil
}

func readIntsFile(name string) ([]int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ns, err := readInts(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ns, nil
}
