package cmd

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// expressions collects the expressions named by the arguments, or the lines
// of the input file when there are none.
func expressions(args []string) ([]string, error) {
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return nil, err
	}
	var exprs []string
	if f != nil {
		defer f.Close()
		exprs, err = lines(f)
		if err != nil {
			return nil, err
		}
	}
	return append(exprs, args...), nil
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// lines reads the non-blank lines of r. Input that looks like UTF-16 is
// decoded first.
func lines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var in io.Reader = br
	if head, _ := br.Peek(8); isUTF16(head) {
		in = transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
	}
	var exprs []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s != "" {
			exprs = append(exprs, s)
		}
	}
	return exprs, sc.Err()
}

// isUTF16 reports whether b starts with a UTF-16 byte order mark or looks
// like little-endian UTF-16 ASCII.
func isUTF16(b []byte) bool {
	if bytes.HasPrefix(b, []byte{0xff, 0xfe}) || bytes.HasPrefix(b, []byte{0xfe, 0xff}) {
		return true
	}
	return len(b) >= 8 && b[1] == 0 && b[3] == 0 && b[5] == 0 && b[7] == 0
}
